package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projectpulse/project-management/internal/api/metrics"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /api/v1/project/createproject.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  createProjectResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/v1/project/createproject [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		RequestingUserID: user.ID,
		Name:             req.Name,
		Description:      req.Description,
		Deadline:         req.Deadline,
		Priority:         req.Priority,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(string(project.Priority)).Inc()
	return c.JSON(http.StatusCreated, createProjectResponse{
		Message: "Project created successfully",
		Project: project,
	})
}
