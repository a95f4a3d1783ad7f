package handler

import (
	"log/slog"
	"net/http"

	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/response"
	"carebridge/internal/domain/entity"
	"carebridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActionHandlerParams holds dependencies for ActionHandler, injected by Fx.
type ActionHandlerParams struct {
	fx.In

	ActionUC usecase.ActionUsecase
	Logger   *slog.Logger
}

// ActionHandler serves the action log
type ActionHandler struct {
	actionUC usecase.ActionUsecase
	logger   *slog.Logger
}

// NewActionHandler is the constructor for ActionHandler
func NewActionHandler(params ActionHandlerParams) *ActionHandler {
	return &ActionHandler{
		actionUC: params.ActionUC,
		logger:   params.Logger,
	}
}

// ConsumeActionRequest represents the request body for consuming an action
type ConsumeActionRequest struct {
	Status string `json:"status" validate:"required,action_status"`
}

// ParentMessageRequest represents the request body for a parent message
type ParentMessageRequest struct {
	TextMessage *string       `json:"text_message" validate:"required_without=Media,omitempty,max=500"`
	Media       *MediaRequest `json:"media" validate:"omitempty"`
}

// ConsumeAction marks a received action played or viewed
func (h *ActionHandler) ConsumeAction(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid action ID")
	}

	var req ConsumeActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consume input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	action, err := h.actionUC.MarkConsumed(c.Request().Context(), userID, actionID, entity.ActionStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, action)
}

// SendWakeAlert sends the parent's daily wake-up check-in
func (h *ActionHandler) SendWakeAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	action, err := h.actionUC.SendWakeAlert(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, action)
}

// SendParentMessage sends a message from the parent to the family
func (h *ActionHandler) SendParentMessage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ParentMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	action, err := h.actionUC.SendParentMessage(c.Request().Context(), userID, usecase.ParentMessageInput{
		TextMessage: req.TextMessage,
		Media:       req.Media.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, action)
}

// GetTodayStatus summarises what the guardian sent today
func (h *ActionHandler) GetTodayStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.actionUC.TodayStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetReceivedToday lists what the parent received today
func (h *ActionHandler) GetReceivedToday(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	actions, err := h.actionUC.ReceivedToday(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, actions)
}
