package domain

import (
	"errors"
	"time"
)

// ProjectPriority is the urgency assigned to a project.
type ProjectPriority string

const (
	PriorityLow    ProjectPriority = "low"
	PriorityMedium ProjectPriority = "medium"
	PriorityHigh   ProjectPriority = "high"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusActive   ProjectStatus = "active"
	StatusInactive ProjectStatus = "inactive"
	StatusClosed   ProjectStatus = "closed"
)

var (
	ErrManagerOnly         = errors.New("only managers can create projects")
	ErrProjectInvalid      = errors.New("invalid project")
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectCreateFailed = errors.New("failed to create project")
)

// ValidPriority reports whether p is one of the known priorities.
func ValidPriority(p ProjectPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s ProjectStatus) bool {
	switch s {
	case StatusActive, StatusInactive, StatusClosed:
		return true
	}
	return false
}

// Project is a unit of work owned by a manager.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Deadline    time.Time       `json:"deadline"`
	Priority    ProjectPriority `json:"priority"`
	Status      ProjectStatus   `json:"status"`
	Owner       string          `json:"owner"`
	Members     []string        `json:"members"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
