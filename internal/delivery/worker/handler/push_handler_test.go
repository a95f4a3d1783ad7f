package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	"carebridge/internal/infra/pubsub"
	mockSvc "carebridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, audience string) (*PushHandler, *mockSvc.MockChangeFeed) {
	t.Helper()

	feed := mockSvc.NewMockChangeFeed(t)

	return &PushHandler{
		audience: audience,
		validate: idtoken.Validate,
		feed:     feed,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, feed
}

func pushBody(t *testing.T, event *service.ActionEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/actions"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testAction() *entity.ActionRecord {
	return &entity.ActionRecord{
		ID:                uuid.New(),
		GroupID:           uuid.New(),
		SenderGuardianID:  uuid.New(),
		RecipientParentID: uuid.New(),
		Kind:              entity.ActionKindCheckIn,
		Status:            entity.ActionStatusPending,
		OriginatorRole:    entity.RoleGuardian,
	}
}

func TestHandlePush_DispatchesInsert(t *testing.T) {
	h, feed := newTestHandler(t, "")
	action := testAction()

	feed.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(a *entity.ActionRecord) bool {
			return a.ID == action.ID && a.Kind == entity.ActionKindCheckIn
		})).
		Return().
		Once()

	rec := doPush(h, pushBody(t, &service.ActionEvent{Type: service.ActionEventInsert, Action: action}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_IgnoresOtherEventTypes(t *testing.T) {
	h, _ := newTestHandler(t, "")

	rec := doPush(h, pushBody(t, &service.ActionEvent{Type: "UPDATE", Action: testAction()}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedPayload(t *testing.T) {
	h, _ := newTestHandler(t, "")

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "missing action", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"type":"INSERT"}`)) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPush(h, tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	action := testAction()
	body := pushBody(t, &service.ActionEvent{Type: service.ActionEventInsert, Action: action})

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example/push")

		rec := doPush(h, body, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validator rejects", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example/push")
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return nil, errors.New("expired")
		}

		rec := doPush(h, body, http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, "https://worker.example/push")
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := doPush(h, body, http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, feed := newTestHandler(t, "https://worker.example/push")
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "https://worker.example/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		feed.EXPECT().Dispatch(mock.Anything, mock.Anything).Return().Once()

		rec := doPush(h, body, http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
