package services

import (
	"context"
	"errors"
	"fmt"

	"glossary-backend/internal/models"
	"glossary-backend/internal/repository"
)

type ProjectStore interface {
	FindByID(ctx context.Context, id uint) (*models.Project, error)
}

type TranslationSetStore interface {
	FindByProjectSlugLocale(ctx context.Context, projectID uint, slug, locale string) (*models.TranslationSet, error)
}

type GlossaryStore interface {
	FindByTranslationSetID(ctx context.Context, setID uint) (*models.Glossary, error)
}

// WalkAncestors calls visit for every ancestor of project, nearest first, until
// visit asks to stop or the root is reached. A parent that no longer exists ends
// the walk. maxDepth <= 0 disables the depth limit; revisiting a project is
// always reported as ErrProjectCycle.
func WalkAncestors(
	ctx context.Context,
	projects ProjectStore,
	project *models.Project,
	maxDepth int,
	visit func(ancestor *models.Project) (stop bool, err error),
) error {
	visited := map[uint]bool{project.ID: true}
	current := project

	for depth := 0; current.HasParent(); depth++ {
		if maxDepth > 0 && depth >= maxDepth {
			return fmt.Errorf("%w: project %d has more than %d ancestors", ErrProjectCycle, project.ID, maxDepth)
		}

		parentID := *current.ParentProjectID
		if visited[parentID] {
			return fmt.Errorf("%w: project %d appears twice above project %d", ErrProjectCycle, parentID, project.ID)
		}
		visited[parentID] = true

		parent, err := projects.FindByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to load project %d: %w", parentID, err)
		}

		stop, err := visit(parent)
		if err != nil || stop {
			return err
		}
		current = parent
	}

	return nil
}

// GlossaryResolver finds the glossary that applies to a translation set,
// inheriting from parent projects when the set has none of its own.
type GlossaryResolver struct {
	projects   ProjectStore
	sets       TranslationSetStore
	glossaries GlossaryStore
	maxDepth   int
}

func NewGlossaryResolver(projects ProjectStore, sets TranslationSetStore, glossaries GlossaryStore, maxDepth int) *GlossaryResolver {
	return &GlossaryResolver{
		projects:   projects,
		sets:       sets,
		glossaries: glossaries,
		maxDepth:   maxDepth,
	}
}

// Resolve returns nil, nil when neither the set nor any ancestor project's set
// with the same slug and locale has a glossary.
func (r *GlossaryResolver) Resolve(ctx context.Context, project *models.Project, set *models.TranslationSet) (*models.ResolvedGlossary, error) {
	if project == nil || set == nil {
		return nil, fmt.Errorf("%w: project and translation set are required", ErrValidation)
	}

	glossary, err := r.glossaries.FindByTranslationSetID(ctx, set.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load glossary of translation set %d: %w", set.ID, err)
	}
	if glossary != nil {
		return &models.ResolvedGlossary{Glossary: glossary, TranslationSet: set}, nil
	}

	var resolved *models.ResolvedGlossary
	err = WalkAncestors(ctx, r.projects, project, r.maxDepth, func(ancestor *models.Project) (bool, error) {
		ancestorSet, err := r.sets.FindByProjectSlugLocale(ctx, ancestor.ID, set.Slug, set.Locale)
		if err != nil {
			return false, fmt.Errorf("failed to load translation set %s/%s of project %d: %w", set.Locale, set.Slug, ancestor.ID, err)
		}
		if ancestorSet == nil {
			return false, nil
		}

		glossary, err := r.glossaries.FindByTranslationSetID(ctx, ancestorSet.ID)
		if err != nil {
			return false, fmt.Errorf("failed to load glossary of translation set %d: %w", ancestorSet.ID, err)
		}
		if glossary == nil {
			return false, nil
		}

		resolved = &models.ResolvedGlossary{Glossary: glossary, TranslationSet: ancestorSet, Inherited: true}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}
