package ports

import (
	"context"

	"github.com/projectpulse/project-management/internal/core/domain"
)

// ProjectRepository defines the persistence interface for projects.
type ProjectRepository interface {
	// Create inserts a new project and returns the stored record, re-fetched
	// by its assigned id.
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
}
