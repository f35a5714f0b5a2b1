package repository

import (
	"context"

	"glossary-backend/internal/database"
	"glossary-backend/internal/models"
)

type TranslationSetRepository interface {
	Create(ctx context.Context, set *models.TranslationSet) error
	FindByID(ctx context.Context, id uint) (*models.TranslationSet, error)
	// FindByProjectSlugLocale returns nil when the project has no such set.
	FindByProjectSlugLocale(ctx context.Context, projectID uint, slug, locale string) (*models.TranslationSet, error)
}

type translationSetRepository struct {
	*GormRepository[models.TranslationSet]
}

func NewTranslationSetRepository(db *database.Database) TranslationSetRepository {
	return &translationSetRepository{
		GormRepository: newGormRepository[models.TranslationSet](db),
	}
}

func (r *translationSetRepository) FindByProjectSlugLocale(ctx context.Context, projectID uint, slug, locale string) (*models.TranslationSet, error) {
	return r.first(ctx, "project_id = ? AND slug = ? AND locale = ?", projectID, slug, locale)
}
