package services

import (
	"context"
	"fmt"
	"time"

	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"

	"gorm.io/gorm"
)

// CopyEntriesFrom inserts a copy of every entry of the source glossary into
// target, owned by target and stamped with now(). Nothing is merged: entries
// already in target stay as they are and duplicate terms are kept.
func CopyEntriesFrom(
	ctx context.Context,
	entries repository.GlossaryEntryRepository,
	sourceGlossaryID uint,
	target *models.Glossary,
	now func() time.Time,
) (int64, error) {
	copied, err := entries.Copy(ctx, sourceGlossaryID, target.ID, now())
	if err != nil {
		return 0, fmt.Errorf("failed to copy entries from glossary %d to %d: %w", sourceGlossaryID, target.ID, err)
	}
	return copied, nil
}

// DeleteGlossaryCascade removes the entries of glossary and then the glossary
// row in one transaction, so a failed glossary delete leaves the entries in place.
func DeleteGlossaryCascade(
	ctx context.Context,
	glossaries repository.GlossaryRepository,
	entries repository.GlossaryEntryRepository,
	glossary *models.Glossary,
) (int64, error) {
	var removed int64
	err := glossaries.Transaction(ctx, func(tx *gorm.DB) error {
		n, err := entries.DeleteByGlossaryID(ctx, tx, glossary.ID)
		if err != nil {
			return fmt.Errorf("failed to delete entries of glossary %d: %w", glossary.ID, err)
		}
		if err := glossaries.Delete(ctx, tx, glossary.ID); err != nil {
			return fmt.Errorf("failed to delete glossary %d: %w", glossary.ID, err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
