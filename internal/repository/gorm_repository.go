package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glossary-backend/internal/database"

	"gorm.io/gorm"
)

// ErrRecordNotFound is returned by lookups by primary key when no row exists.
var ErrRecordNotFound = errors.New("record not found")

// Tabler is implemented by every persisted model.
type Tabler interface {
	TableName() string
}

// GormRepository carries the CRUD plumbing shared by every entity repository.
// Methods that accept a tx run on it when it is non-nil.
type GormRepository[T Tabler] struct {
	db      *database.Database
	timeout time.Duration
}

func newGormRepository[T Tabler](db *database.Database) *GormRepository[T] {
	return &GormRepository[T]{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (g *GormRepository[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *GormRepository[T]) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return g.db.WithContext(ctx)
}

// Transaction runs fn inside a single database transaction. Any error returned
// by fn rolls the whole transaction back.
func (g *GormRepository[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	return g.db.WithContext(ctx).Transaction(fn)
}

func (g *GormRepository[T]) Create(ctx context.Context, t *T) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	return g.db.WithContext(ctx).Create(t).Error
}

func (g *GormRepository[T]) Update(ctx context.Context, t *T) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	return g.db.WithContext(ctx).Save(t).Error
}

func (g *GormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var t T
	err := g.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %d: %w", tableName[T](), id, ErrRecordNotFound)
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes the row with the given id. Deleting a row that does not exist
// is reported as ErrRecordNotFound.
func (g *GormRepository[T]) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var t T
	result := g.GetDB(ctx, tx).Delete(&t, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", tableName[T](), id, ErrRecordNotFound)
	}
	return nil
}

// first returns the first row matching query, or nil when there is none.
func (g *GormRepository[T]) first(ctx context.Context, query any, args ...any) (*T, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var t T
	err := g.db.WithContext(ctx).Where(query, args...).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func tableName[T Tabler]() string {
	var t T
	return t.TableName()
}
