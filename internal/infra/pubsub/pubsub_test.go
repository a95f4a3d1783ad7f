package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	mockSvc "carebridge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.ActionEvent {
	text := "hello"

	return &service.ActionEvent{
		RequestID: "req-1",
		Type:      service.ActionEventInsert,
		Action: &entity.ActionRecord{
			ID:                uuid.New(),
			GroupID:           uuid.New(),
			SenderGuardianID:  uuid.New(),
			RecipientParentID: uuid.New(),
			Kind:              entity.ActionKindMessage,
			Status:            entity.ActionStatusPending,
			TextMessage:       &text,
			OriginatorRole:    entity.RoleParent,
		},
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := testEvent()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		var msg PushMessage
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg)) {
			return
		}
		assert.Equal(t, event.Action.ID.String(), msg.Message.Attributes["action_id"])
		assert.Equal(t, "message", msg.Message.Attributes["kind"])

		decoded, err := DecodePushMessage(&msg)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, event.Action.ID, decoded.Action.ID)
		assert.Equal(t, "hello", decoded.Action.Text())
		assert.True(t, decoded.Action.OriginatedByParent())

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	require.NoError(t, publisher.PublishActionEvent(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishActionEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "500")
}

func TestInProcessPublisher_DispatchesOnFeed(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	event := testEvent()

	feed.EXPECT().Dispatch(mock.Anything, event.Action).Return().Once()

	publisher := NewInProcessPublisher(feed)
	require.NoError(t, publisher.PublishActionEvent(context.Background(), event))
	assert.Error(t, publisher.PublishActionEvent(context.Background(), &service.ActionEvent{}))
}

func TestDecodeEvent_RejectsMissingAction(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":"INSERT"}`))
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodePushMessage_FallsBackToAttributeRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""
	data, attrs, err := encodeEvent(event)
	require.NoError(t, err)
	attrs["request_id"] = "from-attr"

	var msg PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs

	decoded, err := DecodePushMessage(&msg)
	require.NoError(t, err)
	assert.Equal(t, "from-attr", decoded.RequestID)
}

func TestReceiver_HandleDispatchesInserts(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	receiver := &Receiver{feed: feed, logger: newTestLogger()}
	event := testEvent()

	data, _, err := encodeEvent(event)
	require.NoError(t, err)

	feed.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(action *entity.ActionRecord) bool {
			return action.ID == event.Action.ID
		})).
		Return().
		Once()

	receiver.handle(context.Background(), data)
	receiver.handle(context.Background(), []byte("garbage"))
}
