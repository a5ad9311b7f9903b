package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/projectpulse/project-management/internal/core/domain"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// ProjectService implements project creation behind the manager-role gate.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

// CreateProject persists a project owned by the requesting user. The role
// check reads the freshly loaded user record, not the token claims, so a
// demoted manager cannot keep creating projects with an old token.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	user, err := s.users.FindByID(ctx, input.RequestingUserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleManager {
		return nil, domain.ErrManagerOnly
	}

	priority := domain.ProjectPriority(input.Priority)
	if priority == "" {
		priority = domain.PriorityLow
	}
	status := domain.ProjectStatus(input.Status)
	if input.Name == "" || input.Deadline.IsZero() || !domain.ValidPriority(priority) || !domain.ValidStatus(status) {
		return nil, domain.ErrProjectInvalid
	}

	created, err := s.projects.Create(ctx, &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		Deadline:    input.Deadline,
		Priority:    priority,
		Status:      status,
		Owner:       user.ID,
		Members:     []string{user.ID},
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrProjectCreateFailed
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner", user.ID).Msg("project created")
	return created, nil
}
