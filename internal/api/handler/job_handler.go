package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/ports"
)

// JobHandler handles HTTP requests for job posting operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List handles GET /v1/jobs. Only active postings are returned; recruiters
// use GET /v1/jobs/all to see deactivated ones too.
//
// @Summary      List active job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	details, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toJobResponses(details))
}

// ListAll handles GET /v1/jobs/all, including deactivated postings.
//
// @Summary      List all job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /v1/jobs/all [get]
func (h *JobHandler) ListAll(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListAll(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toJobResponses(details))
}

// Get handles GET /v1/jobs/:id.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toJobResponse(*detail))
}

// Create handles POST /v1/jobs.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job posting"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), toJobInput(req), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "job created", toJobResponse(*detail))
}

// Update handles PUT /v1/jobs/:id.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job ID"
// @Param        body  body      jobRequest  true  "Job posting"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), c.Param("id"), toJobInput(req), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "job updated", toJobResponse(*detail))
}

// ToggleActive handles PATCH /v1/jobs/:id/toggle. Postings are never
// deleted; an inactive posting simply stops accepting applications.
//
// @Summary      Toggle a posting's active flag
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/jobs/{id}/toggle [patch]
func (h *JobHandler) ToggleActive(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.ToggleActive(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "job updated", toJobResponse(*detail))
}
