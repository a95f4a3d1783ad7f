package handler

import (
	"net/http"
	"time"

	"carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/response"
	"carebridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultDevTokenTTL = time.Hour

// DevHandler serves development helpers; routes are only registered in the develop env
type DevHandler struct {
	tokenSvc service.TokenService
}

// NewDevHandler creates a new DevHandler instance
func NewDevHandler(tokenSvc service.TokenService) *DevHandler {
	return &DevHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest represents the request body for a development token
type IssueTokenRequest struct {
	UserID string   `json:"user_id" validate:"required,uuid"`
	Roles  []string `json:"roles" validate:"required,min=1,dive,oneof=guardian parent admin"`
	TTLSec int      `json:"ttl_seconds" validate:"gte=0"`
}

// IssueToken signs an access token the way the auth backend would
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ttl := time.Duration(req.TTLSec) * time.Second
	if ttl <= 0 {
		ttl = defaultDevTokenTTL
	}

	token, err := h.tokenSvc.IssueAccessToken(uuid.MustParse(req.UserID), req.Roles, ttl)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"access_token": token})
}

// WhoAmI echoes the authenticated identity
func (h *DevHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
	})
}
