package handler

import (
	"log/slog"
	"net/http"

	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/response"
	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	"carebridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubmissionHandlerParams holds dependencies for SubmissionHandler, injected by Fx.
type SubmissionHandlerParams struct {
	fx.In

	SubmissionUC usecase.SubmissionUsecase
	AdEvents     service.AdEventReporter
	Logger       *slog.Logger
}

// SubmissionHandler drives the reward-gated submission flow of the caller
type SubmissionHandler struct {
	submissionUC usecase.SubmissionUsecase
	adEvents     service.AdEventReporter
	logger       *slog.Logger
}

// NewSubmissionHandler is the constructor for SubmissionHandler
func NewSubmissionHandler(params SubmissionHandlerParams) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUC: params.SubmissionUC,
		adEvents:     params.AdEvents,
		logger:       params.Logger,
	}
}

// MediaRequest is media captured on the device
type MediaRequest struct {
	URI    string `json:"uri" validate:"required_without=Base64"`
	Base64 string `json:"base64"`
	Hint   string `json:"hint" validate:"omitempty,oneof=photo video"`
}

func (m *MediaRequest) toEntity() *entity.MediaAttachment {
	if m == nil {
		return nil
	}

	return &entity.MediaAttachment{
		URI:    m.URI,
		Base64: m.Base64,
		Hint:   entity.ActionKind(m.Hint),
	}
}

// StartSubmissionRequest represents the request body for starting a submission
type StartSubmissionRequest struct {
	Kind        string        `json:"kind" validate:"required,action_kind"`
	TextMessage *string       `json:"text_message" validate:"omitempty,max=500"`
	Media       *MediaRequest `json:"media" validate:"omitempty"`
}

// AdEventRequest is an ad callback reported by the device
type AdEventRequest struct {
	Type    string `json:"type" validate:"required,ad_event"`
	Message string `json:"message" validate:"max=500"`
}

// GetSubmission returns the caller's flow snapshot
func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return response.Success(c, http.StatusOK, h.submissionUC.Snapshot(c.Request().Context(), userID))
}

// StartSubmission captures the payload and requests the rewarded ad
func (h *SubmissionHandler) StartSubmission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StartSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payload := entity.SubmissionPayload{
		Kind:        entity.ActionKind(req.Kind),
		TextMessage: req.TextMessage,
		Media:       req.Media.toEntity(),
	}

	snapshot, err := h.submissionUC.Start(c.Request().Context(), userID, payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, snapshot)
}

// ReportAdEvent forwards a device-played ad callback to the flow
func (h *SubmissionHandler) ReportAdEvent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AdEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ad event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	event := entity.AdEvent{Type: entity.AdEventType(req.Type), Message: req.Message}
	if err := h.adEvents.Dispatch(ctx, userID, event); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.submissionUC.Snapshot(ctx, userID))
}

// RetrySubmission requests a new ad for the retained payload
func (h *SubmissionHandler) RetrySubmission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	snapshot, err := h.submissionUC.Retry(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, snapshot)
}

// DismissSubmission abandons the retained payload
func (h *SubmissionHandler) DismissSubmission(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	snapshot, err := h.submissionUC.Dismiss(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}
