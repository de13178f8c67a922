package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/getready/ats-system/internal/core/ports"
)

// AdminHandler handles account administration and the dashboard.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"omitempty,oneof=CAN REC ADM"`
}

type createRecruiterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
}

type userResponse struct {
	ID          string     `json:"id"`
	UUID        string     `json:"uuid"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Locked      bool       `json:"locked"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type statsSectionResponse struct {
	Available bool             `json:"available"`
	Counts    map[string]int64 `json:"counts,omitempty"`
}

type dashboardResponse struct {
	Users        statsSectionResponse `json:"users"`
	Jobs         statsSectionResponse `json:"jobs"`
	Applications statsSectionResponse `json:"applications"`
}

// ListUsers handles GET /v1/admin/users. Optional role query filter.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Role filter (CAN, REC, ADM)"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListUsers(c.Request().Context(), c.QueryParam("role"), actor)
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return respond(c, http.StatusOK, "", out)
}

// GetUser handles GET /v1/admin/users/:id.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", toUserResponse(*user))
}

// CreateUser handles POST /v1/admin/users. The account receives the
// configured default password.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New account"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /v1/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "user created", toUserResponse(*user))
}

// CreateRecruiter handles POST /v1/admin/recruiters.
//
// @Summary      Create a recruiter account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRecruiterRequest  true  "New recruiter"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /v1/admin/recruiters [post]
func (h *AdminHandler) CreateRecruiter(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createRecruiterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateRecruiter(c.Request().Context(), req.Username, req.Email, actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "recruiter created", toUserResponse(*user))
}

// ToggleLock handles PATCH /v1/admin/users/:id/toggle.
//
// @Summary      Toggle an account lock
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/admin/users/{id}/toggle [patch]
func (h *AdminHandler) ToggleLock(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.ToggleLock(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "user updated", toUserResponse(*user))
}

// ResetPassword handles POST /v1/admin/users/:id/reset-password.
//
// @Summary      Reset a password to the default
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /v1/admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetPassword(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.ResetPassword(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password reset", nil)
}

// Stats handles GET /v1/admin/dashboard/stats. Sections a backing fetch failed for
// come back with available=false; the endpoint itself still returns 200.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /v1/admin/dashboard/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", dashboardResponse{
		Users:        toStatsSection(stats.Users),
		Jobs:         toStatsSection(stats.Jobs),
		Applications: toStatsSection(stats.Applications),
	})
}

func toUserResponse(u ports.UserDetail) userResponse {
	return userResponse{
		ID:          u.ID,
		UUID:        u.UUID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Locked:      u.Locked,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func toStatsSection(s ports.StatsSection) statsSectionResponse {
	return statsSectionResponse{Available: s.Available, Counts: s.Counts}
}
