package repository

import (
	"context"

	"glossary-backend/internal/database"
	"glossary-backend/internal/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindByPath(ctx context.Context, path string) (*models.Project, error)
}

type projectRepository struct {
	*GormRepository[models.Project]
}

func NewProjectRepository(db *database.Database) ProjectRepository {
	return &projectRepository{
		GormRepository: newGormRepository[models.Project](db),
	}
}

func (r *projectRepository) FindByPath(ctx context.Context, path string) (*models.Project, error) {
	return r.first(ctx, "path = ?", path)
}
