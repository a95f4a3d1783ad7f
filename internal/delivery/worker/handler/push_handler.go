package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"carebridge/config"
	deliverycontext "carebridge/internal/delivery/context"
	"carebridge/internal/domain/service"
	"carebridge/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler receives change-feed messages pushed by Pub/Sub (or the local
// publisher) and hands inserted actions to the in-process change feed.
type PushHandler struct {
	audience string
	validate tokenValidator
	feed     service.ChangeFeed
	logger   *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Feed   service.ChangeFeed
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		audience: audience,
		validate: idtoken.Validate,
		feed:     params.Feed,
		logger:   params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages answer 400; everything else is acked with 200 so Pub/Sub
// does not redeliver an event the feed has already fanned out.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodePushMessage(&pushMsg)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode action event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.Type != service.ActionEventInsert {
		reqLogger.Debug("[Worker] Ignoring non-insert event", slog.String("type", event.Type))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatching action",
		slog.String("action_id", event.Action.ID.String()),
		slog.String("kind", string(event.Action.Kind)),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	// Listeners outlive the push request.
	h.feed.Dispatch(context.WithoutCancel(ctx), event.Action)

	return c.NoContent(http.StatusOK)
}

// verifyPushToken verifies the OIDC token Google Pub/Sub attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(ctx context.Context, req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
