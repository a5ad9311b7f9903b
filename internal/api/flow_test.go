package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/projectpulse/project-management/internal/api/handler"
	"github.com/projectpulse/project-management/internal/api/middleware"
	"github.com/projectpulse/project-management/internal/core/domain"
	"github.com/projectpulse/project-management/internal/core/service"
)

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) UpdateRefreshToken(_ context.Context, id, refreshToken string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = refreshToken
	return nil
}

type memProjectRepo struct {
	projects map[string]*domain.Project
	seq      int
}

func (r *memProjectRepo) Create(_ context.Context, project *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *project
	clone.ID = fmt.Sprintf("project_%d", r.seq)
	clone.Members = append([]string(nil), project.Members...)
	r.projects[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

// newTestServer wires the full request path (router, guard, handlers,
// services) over in-memory repositories.
func newTestServer() (*echo.Echo, *memUserRepo, *memProjectRepo) {
	userRepo := &memUserRepo{users: make(map[string]*domain.User)}
	projectRepo := &memProjectRepo{projects: make(map[string]*domain.Project)}

	log := zerolog.Nop()
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJWTIssuer("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	projectService := service.NewProjectService(projectRepo, userRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	authHandler := handler.NewAuthHandler(authService, 15*time.Minute, 168*time.Hour)
	projectHandler := handler.NewProjectHandler(projectService)
	guard := middleware.Auth(tokens, userRepo)

	v1 := e.Group("/api/v1")
	v1.POST("/users/register", authHandler.Register)
	v1.POST("/users/login", authHandler.Login)
	v1.POST("/project/createproject", projectHandler.Create, guard)

	return e, userRepo, projectRepo
}

func doJSON(e *echo.Echo, method, path, body string, decorate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestFlow_RegisterLoginCreateProject(t *testing.T) {
	e, userRepo, projectRepo := newTestServer()

	// Register.
	rec := doJSON(e, http.MethodPost, "/api/v1/users/register",
		`{"firstname":"Jane","lastname":"Doe","email":"jane@x.com","password":"secret123"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Login with the wrong password.
	rec = doJSON(e, http.MethodPost, "/api/v1/users/login",
		`{"email":"jane@x.com","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", rec.Code)
	}

	// Login with the right password.
	rec = doJSON(e, http.MethodPost, "/api/v1/users/login",
		`{"email":"jane@x.com","password":"secret123"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	var accessCookie *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "accessToken" {
			accessCookie = ck
		}
	}
	if accessCookie == nil {
		t.Fatalf("login did not set accessToken cookie")
	}

	var login map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil {
		t.Fatalf("invalid login json: %v", err)
	}
	userID := login["user"].(map[string]any)["id"].(string)

	// Create project without a token.
	rec = doJSON(e, http.MethodPost, "/api/v1/project/createproject",
		`{"name":"launch","deadline":"2026-12-01T00:00:00Z","status":"active"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	// Create project as a plain member.
	withCookie := func(req *http.Request) { req.AddCookie(accessCookie) }
	rec = doJSON(e, http.MethodPost, "/api/v1/project/createproject",
		`{"name":"launch","deadline":"2026-12-01T00:00:00Z","status":"active"}`, withCookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("member: expected 401, got %d (%s)", rec.Code, rec.Body.String())
	}
	if len(projectRepo.projects) != 0 {
		t.Fatalf("no project should be persisted for a member")
	}

	// Promote to manager and retry.
	userRepo.users[userID].Role = domain.RoleManager
	rec = doJSON(e, http.MethodPost, "/api/v1/project/createproject",
		`{"name":"launch","deadline":"2026-12-01T00:00:00Z","status":"active"}`, withCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("manager: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid project json: %v", err)
	}
	project := created["project"].(map[string]any)
	if project["owner"] != userID {
		t.Fatalf("expected owner %q, got %v", userID, project["owner"])
	}
	members, _ := project["members"].([]any)
	if len(members) != 1 || members[0] != userID {
		t.Fatalf("expected members [%s], got %v", userID, members)
	}
	if project["priority"] != "low" {
		t.Fatalf("expected default priority low, got %v", project["priority"])
	}
}
