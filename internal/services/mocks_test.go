package services

import (
	"context"
	"testing"
	"time"

	"glossary-backend/internal/models"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockGlossaryRepository struct{ mock.Mock }

func newMockGlossaryRepository(t *testing.T) *mockGlossaryRepository {
	m := &mockGlossaryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockGlossaryRepository) Create(ctx context.Context, glossary *models.Glossary) error {
	return m.Called(ctx, glossary).Error(0)
}

func (m *mockGlossaryRepository) Update(ctx context.Context, glossary *models.Glossary) error {
	return m.Called(ctx, glossary).Error(0)
}

func (m *mockGlossaryRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *mockGlossaryRepository) FindByID(ctx context.Context, id uint) (*models.Glossary, error) {
	args := m.Called(ctx, id)
	glossary, _ := args.Get(0).(*models.Glossary)
	return glossary, args.Error(1)
}

func (m *mockGlossaryRepository) FindByTranslationSetID(ctx context.Context, setID uint) (*models.Glossary, error) {
	args := m.Called(ctx, setID)
	glossary, _ := args.Get(0).(*models.Glossary)
	return glossary, args.Error(1)
}

// Transaction runs fn without a real transaction.
func (m *mockGlossaryRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	m.Called(ctx)
	return fn(nil)
}

type mockGlossaryEntryRepository struct{ mock.Mock }

func newMockGlossaryEntryRepository(t *testing.T) *mockGlossaryEntryRepository {
	m := &mockGlossaryEntryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockGlossaryEntryRepository) Create(ctx context.Context, entry *models.GlossaryEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockGlossaryEntryRepository) FindByGlossaryID(ctx context.Context, glossaryID uint) ([]models.GlossaryEntry, error) {
	args := m.Called(ctx, glossaryID)
	entries, _ := args.Get(0).([]models.GlossaryEntry)
	return entries, args.Error(1)
}

func (m *mockGlossaryEntryRepository) CountByGlossaryID(ctx context.Context, glossaryID uint) (int64, error) {
	args := m.Called(ctx, glossaryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGlossaryEntryRepository) DeleteFromGlossary(ctx context.Context, glossaryID, entryID uint) error {
	return m.Called(ctx, glossaryID, entryID).Error(0)
}

func (m *mockGlossaryEntryRepository) DeleteByGlossaryID(ctx context.Context, tx *gorm.DB, glossaryID uint) (int64, error) {
	args := m.Called(ctx, tx, glossaryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGlossaryEntryRepository) Copy(ctx context.Context, sourceGlossaryID, targetGlossaryID uint, at time.Time) (int64, error) {
	args := m.Called(ctx, sourceGlossaryID, targetGlossaryID, at)
	return args.Get(0).(int64), args.Error(1)
}

type mockProjectStore struct{ mock.Mock }

func newMockProjectStore(t *testing.T) *mockProjectStore {
	m := &mockProjectStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockProjectStore) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*models.Project)
	return project, args.Error(1)
}

type mockTranslationSetStore struct{ mock.Mock }

func newMockTranslationSetStore(t *testing.T) *mockTranslationSetStore {
	m := &mockTranslationSetStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockTranslationSetStore) FindByProjectSlugLocale(ctx context.Context, projectID uint, slug, locale string) (*models.TranslationSet, error) {
	args := m.Called(ctx, projectID, slug, locale)
	set, _ := args.Get(0).(*models.TranslationSet)
	return set, args.Error(1)
}

type mockExportStorage struct{ mock.Mock }

func newMockExportStorage(t *testing.T) *mockExportStorage {
	m := &mockExportStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockExportStorage) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	return m.Called(ctx, objectName, contentType, data).Error(0)
}

func (m *mockExportStorage) PresignedGetURL(ctx context.Context, objectName, downloadName string) (string, error) {
	args := m.Called(ctx, objectName, downloadName)
	return args.String(0), args.Error(1)
}

func uintPtr(v uint) *uint {
	return &v
}
