package handler

import (
	"time"

	"github.com/projectpulse/project-management/internal/core/domain"
)

type createProjectRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"    validate:"required"`
	Priority    string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      string    `json:"status"      validate:"required,oneof=active inactive closed"`
}

type createProjectResponse struct {
	Message string          `json:"message"`
	Project *domain.Project `json:"project"`
}
