package ports

import (
	"context"
	"time"

	"github.com/projectpulse/project-management/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project on behalf
// of an authenticated user.
type CreateProjectInput struct {
	RequestingUserID string
	Name             string
	Description      string
	Deadline         time.Time
	Priority         string
	Status           string
}

// ProjectService defines the project use cases.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
}
