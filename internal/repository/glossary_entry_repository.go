package repository

import (
	"context"
	"fmt"
	"time"

	"glossary-backend/internal/database"
	"glossary-backend/internal/models"

	"gorm.io/gorm"
)

type GlossaryEntryRepository interface {
	Create(ctx context.Context, entry *models.GlossaryEntry) error
	FindByGlossaryID(ctx context.Context, glossaryID uint) ([]models.GlossaryEntry, error)
	CountByGlossaryID(ctx context.Context, glossaryID uint) (int64, error)
	DeleteFromGlossary(ctx context.Context, glossaryID, entryID uint) error
	DeleteByGlossaryID(ctx context.Context, tx *gorm.DB, glossaryID uint) (int64, error)
	Copy(ctx context.Context, sourceGlossaryID, targetGlossaryID uint, at time.Time) (int64, error)
}

type glossaryEntryRepository struct {
	*GormRepository[models.GlossaryEntry]
}

func NewGlossaryEntryRepository(db *database.Database) GlossaryEntryRepository {
	return &glossaryEntryRepository{
		GormRepository: newGormRepository[models.GlossaryEntry](db),
	}
}

func (r *glossaryEntryRepository) FindByGlossaryID(ctx context.Context, glossaryID uint) ([]models.GlossaryEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.GlossaryEntry
	err := r.db.WithContext(ctx).
		Where("glossary_id = ?", glossaryID).
		Order("term ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *glossaryEntryRepository) CountByGlossaryID(ctx context.Context, glossaryID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.GlossaryEntry{}).Where("glossary_id = ?", glossaryID).Count(&count).Error
	return count, err
}

func (r *glossaryEntryRepository) DeleteFromGlossary(ctx context.Context, glossaryID, entryID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Where("glossary_id = ?", glossaryID).Delete(&models.GlossaryEntry{}, entryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("glossary entry %d in glossary %d: %w", entryID, glossaryID, ErrRecordNotFound)
	}
	return nil
}

func (r *glossaryEntryRepository) DeleteByGlossaryID(ctx context.Context, tx *gorm.DB, glossaryID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.GetDB(ctx, tx).Where("glossary_id = ?", glossaryID).Delete(&models.GlossaryEntry{})
	return result.RowsAffected, result.Error
}

// Copy duplicates every entry of the source glossary into the target glossary,
// stamping the copies with at. Existing target entries are left alone and
// duplicate terms are not detected.
func (r *glossaryEntryRepository) Copy(ctx context.Context, sourceGlossaryID, targetGlossaryID uint, at time.Time) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO glossary_entries (
			glossary_id, term, type, examples, comment, suggested_translation, last_update
		)
		SELECT ?, term, type, examples, comment, suggested_translation, ?
		FROM glossary_entries
		WHERE glossary_id = ?
		ORDER BY id
	`, targetGlossaryID, at, sourceGlossaryID)
	return result.RowsAffected, result.Error
}
