package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for the application lifecycle.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Submit handles POST /v1/applications. The body is multipart form data:
// job_id, an optional notes field, and the resume file itself.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        job_id  formData  string  true   "Job ID"
// @Param        notes   formData  string  false  "Cover notes"
// @Param        resume  formData  file    true   "Resume (pdf, doc, docx or txt, max 3MB)"
// @Success      201     {object}  envelope
// @Failure      400     {object}  envelope
// @Failure      409     {object}  envelope
// @Failure      413     {object}  envelope
// @Router       /v1/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	jobID := c.FormValue("job_id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job_id is required")
	}

	in := ports.SubmitApplicationInput{
		JobID: jobID,
		Actor: actor,
		Notes: c.FormValue("notes"),
	}

	fh, err := c.FormFile("resume")
	if err == nil {
		src, openErr := fh.Open()
		if openErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable resume upload")
		}
		defer src.Close()
		in.Resume = ports.ResumeUpload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Content:  src,
		}
	}

	detail, err := h.service.Submit(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "application submitted", toApplicationResponse(*detail))
}

// List handles GET /v1/applications. Optional query filters: job_id and
// status. Candidates only ever see their own applications.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        job_id  query     string  false  "Filter by job"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  envelope
// @Failure      400     {object}  envelope
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	details, err := h.service.List(c.Request().Context(), ports.ListApplicationsInput{
		Actor:  actor,
		JobID:  c.QueryParam("job_id"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toApplicationResponses(details))
}

// Get handles GET /v1/applications/:id.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toApplicationResponse(*detail))
}

// UpdateStatus handles PATCH /v1/applications/:id/status. The new status
// comes from the status query parameter, or from a JSON body when the
// parameter is absent.
//
// @Summary      Change application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string               true   "Application ID"
// @Param        status  query     string               false  "New status"
// @Param        body    body      updateStatusRequest  false  "New status"
// @Success      200     {object}  envelope
// @Failure      400     {object}  envelope
// @Failure      422     {object}  envelope
// @Router       /v1/applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	status := c.QueryParam("status")
	if status == "" {
		var req updateStatusRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		status = req.Status
	}

	detail, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), status, actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "status updated", toApplicationResponse(*detail))
}

// ScheduleInterview handles POST /v1/applications/:id/interview.
//
// @Summary      Schedule an interview
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Application ID"
// @Param        body  body      interviewRequest  true  "Interview details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /v1/applications/{id}/interview [post]
func (h *ApplicationHandler) ScheduleInterview(c echo.Context) error {
	return h.interviewMutation(c, http.StatusCreated, "interview scheduled", h.service.ScheduleInterview)
}

// UpdateInterview handles PUT /v1/applications/:id/interview.
//
// @Summary      Update a scheduled interview
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Application ID"
// @Param        body  body      interviewRequest  true  "Interview details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /v1/applications/{id}/interview [put]
func (h *ApplicationHandler) UpdateInterview(c echo.Context) error {
	return h.interviewMutation(c, http.StatusOK, "interview updated", h.service.UpdateInterview)
}

// interviewMutation shares the bind-validate-invoke flow between schedule
// and update, which differ only in the service call and response wording.
func (h *ApplicationHandler) interviewMutation(
	c echo.Context,
	code int,
	message string,
	op func(ctx context.Context, id string, in ports.InterviewInput, actor ports.Actor) (*ports.ApplicationDetail, error),
) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req interviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := op(c.Request().Context(), c.Param("id"), toInterviewInput(req), actor)
	if err != nil {
		return err
	}
	return respond(c, code, message, toApplicationResponse(*detail))
}

// CancelInterview handles DELETE /v1/applications/:id/interview. Cancelling
// when nothing is scheduled is a no-op success.
//
// @Summary      Cancel a scheduled interview
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/applications/{id}/interview [delete]
func (h *ApplicationHandler) CancelInterview(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.CancelInterview(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "interview cancelled", toApplicationResponse(*detail))
}

// History handles GET /v1/applications/:id/history.
//
// @Summary      Application activity trail
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/applications/{id}/history [get]
func (h *ApplicationHandler) History(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	events, err := h.service.History(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toActivityEventResponses(events))
}
