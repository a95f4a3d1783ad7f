package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "carebridge/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		keepsID bool
	}{
		{name: "reuses client id", header: "abc-123_x.y", keepsID: true},
		{name: "generates when missing", header: ""},
		{name: "replaces unsafe id", header: "evil\nlevel=ERROR"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				assert.Equal(t, deliverycontext.GetRequestID(c), deliverycontext.GetRequestIDFromContext(ctx))
				deliverycontext.GetLogger(ctx).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			if tt.keepsID {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
			assert.Contains(t, buf.String(), "request_id="+got)
		})
	}
}

func TestWithLogAttrs(t *testing.T) {
	var buf bytes.Buffer
	ctx := deliverycontext.WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx = deliverycontext.WithLogAttrs(ctx, slog.String("user_id", "u-1"))
	deliverycontext.GetLogger(ctx).Info("enriched")

	assert.Contains(t, buf.String(), "user_id=u-1")
	assert.Nil(t, deliverycontext.GetLogger(deliverycontext.WithLogAttrs(t.Context(), "k", "v")))
}
