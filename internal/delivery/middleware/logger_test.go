package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carebridge/config"
	domainerrors "carebridge/internal/domain/errors"
	"carebridge/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		debug    bool
		handler  echo.HandlerFunc
		expected []string
		silent   bool
	}{
		{
			name:    "reads are silent without debug",
			method:  http.MethodGet,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			silent:  true,
		},
		{
			name:     "reads are logged in debug",
			method:   http.MethodGet,
			debug:    true,
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			expected: []string{"level=INFO", "status=200"},
		},
		{
			name:     "mutations are always logged",
			method:   http.MethodPost,
			handler:  func(c echo.Context) error { return c.NoContent(http.StatusAccepted) },
			expected: []string{"level=INFO", "status=202"},
		},
		{
			name:     "uncommitted app error uses its status",
			method:   http.MethodPost,
			handler:  func(echo.Context) error { return errors.WithStack(domainerrors.ErrSubmissionInFlight) },
			expected: []string{"level=WARN", "status=409"},
		},
		{
			name:     "unknown error is a server error",
			method:   http.MethodPost,
			handler:  func(echo.Context) error { return errors.New("boom") },
			expected: []string{"level=ERROR", "status=500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(tt.method, "/api/v1/submissions", nil), httptest.NewRecorder())

			_ = m.Handle(tt.handler)(c)

			if tt.silent {
				assert.Empty(t, buf.String())

				return
			}
			require.Contains(t, buf.String(), "HTTP Request")
			for _, want := range tt.expected {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
