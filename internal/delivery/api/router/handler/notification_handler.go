package handler

import (
	"log/slog"
	"net/http"

	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/response"
	"carebridge/internal/domain/entity"
	"carebridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	PermissionUC   usecase.PermissionUsecase
	Logger         *slog.Logger
}

// NotificationHandler exposes the permission gate and the change-feed sessions
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	permissionUC   usecase.PermissionUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		permissionUC:   params.PermissionUC,
		logger:         params.Logger,
	}
}

// PermissionResponse carries a permission status
type PermissionResponse struct {
	Status entity.PermissionStatus `json:"status"`
}

// GetPermission returns the cached permission status without prompting
func (h *NotificationHandler) GetPermission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.permissionUC.Current(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PermissionResponse{Status: status})
}

// RequestPermission prompts for permission unless already granted
func (h *NotificationHandler) RequestPermission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.permissionUC.Request(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PermissionResponse{Status: status})
}

// StartSession starts or restarts the caller's change-feed subscription
func (h *NotificationHandler) StartSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roles, _ := middleware.GetRoles(c)
	role, ok := roles.Primary()
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
	}

	handle, err := h.notificationUC.StartSession(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, handle)
}

// GetSession returns the caller's active subscription
func (h *NotificationHandler) GetSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	handle, ok := h.notificationUC.ActiveSession(userID)
	if !ok {
		return response.NotFound(c, "SESSION_NOT_FOUND", "No active notification session")
	}

	return response.Success(c, http.StatusOK, handle)
}

// StopSession stops the caller's subscription
func (h *NotificationHandler) StopSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.notificationUC.StopSession(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
