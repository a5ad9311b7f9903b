package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/projectpulse/project-management/internal/api/middleware"
	"github.com/projectpulse/project-management/internal/core/domain"
	"github.com/projectpulse/project-management/internal/core/ports"
)

type stubProjectService struct {
	createFn func(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error)
}

func (s *stubProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, input)
}

func newProjectContext(body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/project/createproject", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

const validProjectBody = `{
	"name": "launch",
	"description": "initial launch",
	"deadline": "2026-12-01T00:00:00Z",
	"priority": "high",
	"status": "active"
}`

func TestProjectHandler_Create_Success(t *testing.T) {
	manager := &domain.User{ID: "user_1", Role: domain.RoleManager}
	stub := &stubProjectService{
		createFn: func(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			if input.RequestingUserID != "user_1" {
				t.Fatalf("unexpected requesting user: %q", input.RequestingUserID)
			}
			if input.Name != "launch" || input.Priority != "high" || input.Status != "active" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Project{
				ID:       "project_1",
				Name:     input.Name,
				Deadline: input.Deadline,
				Priority: domain.PriorityHigh,
				Status:   domain.StatusActive,
				Owner:    input.RequestingUserID,
				Members:  []string{input.RequestingUserID},
			}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, rec := newProjectContext(validProjectBody, manager)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	project, ok := resp["project"].(map[string]any)
	if !ok || project["owner"] != "user_1" {
		t.Fatalf("unexpected project payload: %+v", resp)
	}
}

func TestProjectHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(_ context.Context, _ ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newProjectContext(validProjectBody, nil)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Create_ValidationFails(t *testing.T) {
	manager := &domain.User{ID: "user_1", Role: domain.RoleManager}
	stub := &stubProjectService{
		createFn: func(_ context.Context, _ ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newProjectContext(`{"name":"launch","deadline":"2026-12-01T00:00:00Z"}`, manager)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Create_NonManager(t *testing.T) {
	member := &domain.User{ID: "user_2", Role: domain.RoleMember}
	stub := &stubProjectService{
		createFn: func(_ context.Context, _ ports.CreateProjectInput) (*domain.Project, error) {
			return nil, domain.ErrManagerOnly
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newProjectContext(validProjectBody, member)
	if err := h.Create(c); !errors.Is(err, domain.ErrManagerOnly) {
		t.Fatalf("expected ErrManagerOnly, got %v", err)
	}
}

func TestProjectHandler_Create_DeadlineParsing(t *testing.T) {
	manager := &domain.User{ID: "user_1", Role: domain.RoleManager}
	var got time.Time
	stub := &stubProjectService{
		createFn: func(_ context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
			got = input.Deadline
			return &domain.Project{ID: "project_1", Owner: "user_1", Members: []string{"user_1"}}, nil
		},
	}
	h := NewProjectHandler(stub)

	c, _ := newProjectContext(validProjectBody, manager)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected deadline %v, got %v", want, got)
	}
}
