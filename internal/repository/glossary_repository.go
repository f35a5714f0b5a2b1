package repository

import (
	"context"

	"glossary-backend/internal/database"
	"glossary-backend/internal/models"

	"gorm.io/gorm"
)

type GlossaryRepository interface {
	Create(ctx context.Context, glossary *models.Glossary) error
	Update(ctx context.Context, glossary *models.Glossary) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Glossary, error)
	// FindByTranslationSetID returns nil when no glossary is attached to the set.
	FindByTranslationSetID(ctx context.Context, setID uint) (*models.Glossary, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type glossaryRepository struct {
	*GormRepository[models.Glossary]
}

func NewGlossaryRepository(db *database.Database) GlossaryRepository {
	return &glossaryRepository{
		GormRepository: newGormRepository[models.Glossary](db),
	}
}

func (r *glossaryRepository) FindByTranslationSetID(ctx context.Context, setID uint) (*models.Glossary, error) {
	return r.first(ctx, "translation_set_id = ?", setID)
}
