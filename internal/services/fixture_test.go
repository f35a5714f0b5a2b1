package services

import (
	"context"
	"io"
	"testing"
	"time"

	"glossary-backend/internal/database/databasetest"
	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

type fixture struct {
	projects   repository.ProjectRepository
	sets       repository.TranslationSetRepository
	glossaries repository.GlossaryRepository
	entries    repository.GlossaryEntryRepository
	resolver   *GlossaryResolver
	catalog    CatalogService
	service    GlossaryService
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newFixture(t *testing.T, storage ExportStorage) *fixture {
	t.Helper()
	db := databasetest.New(t)
	logger := newTestLogger()

	f := &fixture{
		projects:   repository.NewProjectRepository(db),
		sets:       repository.NewTranslationSetRepository(db),
		glossaries: repository.NewGlossaryRepository(db),
		entries:    repository.NewGlossaryEntryRepository(db),
	}
	f.resolver = NewGlossaryResolver(f.projects, f.sets, f.glossaries, 16)
	f.catalog = NewCatalogService(f.projects, f.sets, logger)
	f.service = NewGlossaryService(f.glossaries, f.entries, f.projects, f.sets, f.resolver, storage, logger, func() time.Time { return fixedNow })
	return f
}

func (f *fixture) project(t *testing.T, slug string, parent *models.Project) *models.Project {
	t.Helper()
	project := &models.Project{Name: slug, Slug: slug}
	if parent != nil {
		project.ParentProjectID = uintPtr(parent.ID)
	}
	require.NoError(t, f.catalog.CreateProject(context.Background(), project))
	return project
}

func (f *fixture) set(t *testing.T, project *models.Project, slug, locale string) *models.TranslationSet {
	t.Helper()
	set := &models.TranslationSet{Name: locale, ProjectID: project.ID, Slug: slug, Locale: locale}
	require.NoError(t, f.catalog.CreateTranslationSet(context.Background(), set))
	return set
}

func (f *fixture) glossary(t *testing.T, set *models.TranslationSet) *models.Glossary {
	t.Helper()
	glossary := &models.Glossary{TranslationSetID: set.ID, Description: set.Locale}
	require.NoError(t, f.service.CreateGlossary(context.Background(), glossary))
	return glossary
}

func (f *fixture) entry(t *testing.T, glossary *models.Glossary, term, translation string) *models.GlossaryEntry {
	t.Helper()
	entry := &models.GlossaryEntry{Term: term, Type: "noun", SuggestedTranslation: translation, Comment: "c-" + term, Examples: "e-" + term}
	require.NoError(t, f.service.AddEntry(context.Background(), glossary.ID, entry))
	return entry
}
