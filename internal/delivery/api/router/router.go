// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"carebridge/config"
	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/router/handler"
	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	SubmissionHandler   *handler.SubmissionHandler
	ActionHandler       *handler.ActionHandler
	DevHandler          *handler.DevHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	notificationHandler *handler.NotificationHandler
	submissionHandler   *handler.SubmissionHandler
	actionHandler       *handler.ActionHandler
	devHandler          *handler.DevHandler
	authMiddleware      *middleware.AuthMiddleware
	metricsHandler      http.Handler
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		notificationHandler: params.NotificationHandler,
		submissionHandler:   params.SubmissionHandler,
		actionHandler:       params.ActionHandler,
		devHandler:          params.DevHandler,
		authMiddleware:      params.AuthMiddleware,
		metricsHandler:      promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}),
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metricsHandler))

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateDeviceToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Notification permission and change-feed session routes
	notificationsGroup := apiV1.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.RequireRole(entity.RoleGuardian, entity.RoleParent))
	{
		notificationsGroup.GET("/permission", r.notificationHandler.GetPermission)
		notificationsGroup.POST("/permission", r.notificationHandler.RequestPermission)
		notificationsGroup.GET("/session", r.notificationHandler.GetSession)
		notificationsGroup.POST("/session", r.notificationHandler.StartSession)
		notificationsGroup.DELETE("/session", r.notificationHandler.StopSession)
	}

	// Reward-gated submissions (guardian only)
	submissionsGroup := apiV1.Group("/submissions")
	submissionsGroup.Use(r.authMiddleware.RequireRole(entity.RoleGuardian))
	{
		submissionsGroup.GET("", r.submissionHandler.GetSubmission)
		submissionsGroup.POST("", r.submissionHandler.StartSubmission)
		submissionsGroup.POST("/events", r.submissionHandler.ReportAdEvent)
		submissionsGroup.POST("/retry", r.submissionHandler.RetrySubmission)
		submissionsGroup.POST("/dismiss", r.submissionHandler.DismissSubmission)
	}

	actionsGroup := apiV1.Group("/actions")
	{
		actionsGroup.GET("/today", r.actionHandler.GetTodayStatus, r.authMiddleware.RequireRole(entity.RoleGuardian))

		parentOnly := r.authMiddleware.RequireRole(entity.RoleParent)
		actionsGroup.GET("/received", r.actionHandler.GetReceivedToday, parentOnly)
		actionsGroup.POST("/:id/consume", r.actionHandler.ConsumeAction, parentOnly)
		actionsGroup.POST("/wake", r.actionHandler.SendWakeAlert, parentOnly)
		actionsGroup.POST("/messages", r.actionHandler.SendParentMessage, parentOnly)
	}
}

// RegisterDevRoutes sets up token helpers in the develop env only.
func (r *router) RegisterDevRoutes(e *echo.Echo) {
	if r.config.Env.Env != constants.EnvDevelop {
		return
	}

	devGroup := e.Group("/dev")
	devGroup.POST("/token", r.devHandler.IssueToken)
	devGroup.GET("/whoami", r.devHandler.WhoAmI, r.authMiddleware.Authenticate)
}
