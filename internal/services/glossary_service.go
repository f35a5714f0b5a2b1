package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type GlossaryService interface {
	// Glossary operations
	CreateGlossary(ctx context.Context, glossary *models.Glossary) error
	GetGlossary(ctx context.Context, id uint) (*models.Glossary, error)
	UpdateGlossary(ctx context.Context, id uint, description string) (*models.Glossary, error)
	DeleteGlossary(ctx context.Context, id uint) error
	ResolveForTranslationSet(ctx context.Context, setID uint) (*models.ResolvedGlossary, error)
	CopyEntries(ctx context.Context, sourceGlossaryID, targetGlossaryID uint) (int64, error)

	// Entry operations
	AddEntry(ctx context.Context, glossaryID uint, entry *models.GlossaryEntry) error
	ListEntries(ctx context.Context, glossaryID uint) ([]models.GlossaryEntry, error)
	DeleteEntry(ctx context.Context, glossaryID, entryID uint) error

	// Export operations
	ExportGlossary(ctx context.Context, id uint) (*GlossaryExport, error)
}

type GlossaryExport struct {
	ObjectName string `json:"object_name" example:"glossaries/1/2f1c9a7e.csv"`
	URL        string `json:"url"`
	Entries    int    `json:"entries" example:"42"`
}

type glossaryService struct {
	glossaries repository.GlossaryRepository
	entries    repository.GlossaryEntryRepository
	projects   repository.ProjectRepository
	sets       repository.TranslationSetRepository
	resolver   *GlossaryResolver
	storage    ExportStorage
	logger     *logrus.Logger
	now        func() time.Time
}

// NewGlossaryService wires the glossary operations. storage may be nil, in which
// case exports fail. now defaults to the UTC wall clock.
func NewGlossaryService(
	glossaries repository.GlossaryRepository,
	entries repository.GlossaryEntryRepository,
	projects repository.ProjectRepository,
	sets repository.TranslationSetRepository,
	resolver *GlossaryResolver,
	storage ExportStorage,
	logger *logrus.Logger,
	now func() time.Time,
) GlossaryService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &glossaryService{
		glossaries: glossaries,
		entries:    entries,
		projects:   projects,
		sets:       sets,
		resolver:   resolver,
		storage:    storage,
		logger:     logger,
		now:        now,
	}
}

func (s *glossaryService) CreateGlossary(ctx context.Context, glossary *models.Glossary) error {
	if err := ValidateGlossary(glossary); err != nil {
		return err
	}

	if _, err := s.sets.FindByID(ctx, glossary.TranslationSetID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: translation set %d does not exist", ErrValidation, glossary.TranslationSetID)
		}
		return fmt.Errorf("failed to load translation set: %w", err)
	}

	existing, err := s.glossaries.FindByTranslationSetID(ctx, glossary.TranslationSetID)
	if err != nil {
		return fmt.Errorf("failed to check existing glossary: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: translation set %d already has glossary %d", ErrValidation, glossary.TranslationSetID, existing.ID)
	}

	glossary.ID = 0
	return s.glossaries.Create(ctx, glossary)
}

func (s *glossaryService) GetGlossary(ctx context.Context, id uint) (*models.Glossary, error) {
	return s.glossaries.FindByID(ctx, id)
}

func (s *glossaryService) UpdateGlossary(ctx context.Context, id uint, description string) (*models.Glossary, error) {
	glossary, err := s.glossaries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	glossary.Description = description
	if err := s.glossaries.Update(ctx, glossary); err != nil {
		return nil, fmt.Errorf("failed to update glossary %d: %w", id, err)
	}
	return glossary, nil
}

func (s *glossaryService) DeleteGlossary(ctx context.Context, id uint) error {
	glossary, err := s.glossaries.FindByID(ctx, id)
	if err != nil {
		return err
	}

	removed, err := DeleteGlossaryCascade(ctx, s.glossaries, s.entries, glossary)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"glossary_id":     id,
		"entries_removed": removed,
	}).Info("Glossary deleted")
	return nil
}

func (s *glossaryService) ResolveForTranslationSet(ctx context.Context, setID uint) (*models.ResolvedGlossary, error) {
	set, err := s.sets.FindByID(ctx, setID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, set.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project of translation set %d: %w", setID, err)
	}

	resolved, err := s.resolver.Resolve(ctx, project, set)
	if err != nil {
		return nil, err
	}

	if resolved != nil {
		s.logger.WithFields(logrus.Fields{
			"translation_set_id": setID,
			"glossary_id":        resolved.Glossary.ID,
			"inherited":          resolved.Inherited,
		}).Debug("Glossary resolved")
	}
	return resolved, nil
}

func (s *glossaryService) CopyEntries(ctx context.Context, sourceGlossaryID, targetGlossaryID uint) (int64, error) {
	if _, err := s.glossaries.FindByID(ctx, sourceGlossaryID); err != nil {
		return 0, err
	}
	target, err := s.glossaries.FindByID(ctx, targetGlossaryID)
	if err != nil {
		return 0, err
	}

	copied, err := CopyEntriesFrom(ctx, s.entries, sourceGlossaryID, target, s.now)
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"source_glossary_id": sourceGlossaryID,
		"target_glossary_id": targetGlossaryID,
		"copied":             copied,
	}).Info("Glossary entries copied")
	return copied, nil
}

func (s *glossaryService) AddEntry(ctx context.Context, glossaryID uint, entry *models.GlossaryEntry) error {
	if _, err := s.glossaries.FindByID(ctx, glossaryID); err != nil {
		return err
	}

	entry.ID = 0
	entry.GlossaryID = glossaryID
	entry.LastUpdate = s.now()
	if err := ValidateGlossaryEntry(entry); err != nil {
		return err
	}

	return s.entries.Create(ctx, entry)
}

func (s *glossaryService) ListEntries(ctx context.Context, glossaryID uint) ([]models.GlossaryEntry, error) {
	if _, err := s.glossaries.FindByID(ctx, glossaryID); err != nil {
		return nil, err
	}
	return s.entries.FindByGlossaryID(ctx, glossaryID)
}

func (s *glossaryService) DeleteEntry(ctx context.Context, glossaryID, entryID uint) error {
	return s.entries.DeleteFromGlossary(ctx, glossaryID, entryID)
}

func (s *glossaryService) ExportGlossary(ctx context.Context, id uint) (*GlossaryExport, error) {
	if s.storage == nil {
		return nil, errors.New("export storage is not configured")
	}

	glossary, err := s.glossaries.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	set, err := s.sets.FindByID(ctx, glossary.TranslationSetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load translation set of glossary %d: %w", id, err)
	}
	entries, err := s.entries.FindByGlossaryID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries of glossary %d: %w", id, err)
	}

	data, err := RenderGlossaryCSV(set.Locale, entries)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("glossaries/%d/%s.csv", id, uuid.New().String())
	if err := s.storage.PutObject(ctx, objectName, "text/csv", data); err != nil {
		return nil, err
	}

	downloadName := fmt.Sprintf("glossary-%s-%s.csv", set.Locale, set.Slug)
	url, err := s.storage.PresignedGetURL(ctx, objectName, downloadName)
	if err != nil {
		return nil, err
	}

	return &GlossaryExport{
		ObjectName: objectName,
		URL:        url,
		Entries:    len(entries),
	}, nil
}

// RenderGlossaryCSV writes entries as "en,<locale>,pos,description" rows.
func RenderGlossaryCSV(locale string, entries []models.GlossaryEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"en", locale, "pos", "description"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Term, e.SuggestedTranslation, e.Type, e.Comment}); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
