package services

import (
	"context"
	"errors"
	"fmt"

	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// CatalogService manages the projects and translation sets glossaries hang off.
type CatalogService interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	CreateTranslationSet(ctx context.Context, set *models.TranslationSet) error
	GetTranslationSet(ctx context.Context, id uint) (*models.TranslationSet, error)
}

type catalogService struct {
	projects repository.ProjectRepository
	sets     repository.TranslationSetRepository
	logger   *logrus.Logger
}

func NewCatalogService(projects repository.ProjectRepository, sets repository.TranslationSetRepository, logger *logrus.Logger) CatalogService {
	return &catalogService{
		projects: projects,
		sets:     sets,
		logger:   logger,
	}
}

func (s *catalogService) CreateProject(ctx context.Context, project *models.Project) error {
	if err := ValidateStruct(project); err != nil {
		return err
	}

	project.ID = 0
	project.Path = project.Slug
	if project.HasParent() {
		parent, err := s.projects.FindByID(ctx, *project.ParentProjectID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return fmt.Errorf("%w: parent project %d does not exist", ErrValidation, *project.ParentProjectID)
			}
			return fmt.Errorf("failed to load parent project: %w", err)
		}
		project.Path = parent.Path + "/" + project.Slug
	} else {
		project.ParentProjectID = nil
	}

	existing, err := s.projects.FindByPath(ctx, project.Path)
	if err != nil {
		return fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: project path %q is taken", ErrValidation, project.Path)
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"path":       project.Path,
	}).Info("Project created")
	return nil
}

func (s *catalogService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *catalogService) CreateTranslationSet(ctx context.Context, set *models.TranslationSet) error {
	if err := ValidateStruct(set); err != nil {
		return err
	}

	if _, err := s.projects.FindByID(ctx, set.ProjectID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: project %d does not exist", ErrValidation, set.ProjectID)
		}
		return fmt.Errorf("failed to load project: %w", err)
	}

	existing, err := s.sets.FindByProjectSlugLocale(ctx, set.ProjectID, set.Slug, set.Locale)
	if err != nil {
		return fmt.Errorf("failed to check existing translation set: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: project %d already has translation set %s/%s", ErrValidation, set.ProjectID, set.Locale, set.Slug)
	}

	set.ID = 0
	if err := s.sets.Create(ctx, set); err != nil {
		return fmt.Errorf("failed to create translation set: %w", err)
	}
	return nil
}

func (s *catalogService) GetTranslationSet(ctx context.Context, id uint) (*models.TranslationSet, error) {
	return s.sets.FindByID(ctx, id)
}
