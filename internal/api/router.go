package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/getready/ats-system/docs"
	"github.com/getready/ats-system/internal/api/handler"
	"github.com/getready/ats-system/internal/api/middleware"
	"github.com/getready/ats-system/internal/core/domain"
)

// Handlers bundles the transport handlers the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Admin       *handler.AdminHandler
	File        *handler.FileHandler
	Health      *handler.HealthHandler
	HealthDeps  *handler.HealthDependenciesHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(h Handlers, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ats"))

	auth := middleware.Auth(jwtSecret)
	recruiters := middleware.RBAC(domain.RoleRecruiter, domain.RoleAdmin)
	admins := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC()

	// --- Auth ---
	e.POST("/auth/login", h.Auth.Login)
	e.GET("/auth/me", h.Auth.Me, auth, anyRole)
	e.POST("/auth/logout", h.Auth.Logout, auth, anyRole)

	v1 := e.Group("/v1", auth)

	// --- Jobs ---
	v1.GET("/jobs", h.Job.List, anyRole)
	v1.GET("/jobs/all", h.Job.ListAll, recruiters)
	v1.GET("/jobs/:id", h.Job.Get, anyRole)
	v1.POST("/jobs", h.Job.Create, recruiters)
	v1.PUT("/jobs/:id", h.Job.Update, recruiters)
	v1.PATCH("/jobs/:id/toggle", h.Job.ToggleActive, recruiters)

	// --- Applications ---
	v1.POST("/applications", h.Application.Submit, middleware.RBAC(domain.RoleCandidate))
	v1.GET("/applications", h.Application.List, anyRole)
	v1.GET("/applications/:id", h.Application.Get, anyRole)
	v1.PATCH("/applications/:id/status", h.Application.UpdateStatus, recruiters)
	v1.POST("/applications/:id/interview", h.Application.ScheduleInterview, recruiters)
	v1.PUT("/applications/:id/interview", h.Application.UpdateInterview, recruiters)
	v1.DELETE("/applications/:id/interview", h.Application.CancelInterview, recruiters)
	v1.GET("/applications/:id/history", h.Application.History, recruiters)

	// --- Admin ---
	v1.GET("/admin/users", h.Admin.ListUsers, admins)
	v1.GET("/admin/users/:id", h.Admin.GetUser, admins)
	v1.POST("/admin/users", h.Admin.CreateUser, admins)
	v1.POST("/admin/recruiters", h.Admin.CreateRecruiter, admins)
	v1.PATCH("/admin/users/:id/toggle", h.Admin.ToggleLock, admins)
	v1.POST("/admin/users/:id/reset-password", h.Admin.ResetPassword, admins)
	v1.GET("/admin/dashboard/stats", h.Admin.Stats, recruiters)

	// --- Files ---
	// Token issuance needs a session; download and view authenticate with
	// the issued token alone so the links survive being opened in a new tab.
	v1.POST("/files/:id/token", h.File.IssueToken, anyRole)
	e.GET("/v1/files/:id/download", h.File.Download)
	e.GET("/v1/files/:id/view", h.File.View)

	// --- Health probes (no auth required) ---
	e.GET("/health", h.Health.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", h.HealthDeps.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
