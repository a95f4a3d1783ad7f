package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carebridge/internal/delivery/api/validator"
	domainerrors "carebridge/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	type validatedInput struct {
		Kind string `validate:"required"`
	}
	validationErr := validator.New().Validate(&validatedInput{})
	require.Error(t, validationErr)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "client app error",
			err:          errors.WithStack(domainerrors.ErrWakeAlertAlreadySent),
			expectedCode: http.StatusConflict,
			expectedBody: "WAKE_ALERT_ALREADY_SENT",
		},
		{
			name:         "server app error",
			err:          domainerrors.NewActionInsertError(errors.New(`duplicate key value violates unique constraint "action_logs_pkey"`)),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "ACTION_INSERT_FAILED",
		},
		{
			name:         "validation error",
			err:          validationErr,
			expectedCode: http.StatusBadRequest,
			expectedBody: "VALIDATION_ERROR",
		},
		{
			name:         "echo error",
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedBody: "HTTP_ERROR",
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/actions/wake", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var body map[string]map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body["error"]["code"])
		})
	}
}
