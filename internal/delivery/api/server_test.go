package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carebridge/config"
	apimiddleware "carebridge/internal/delivery/api/middleware"
	"carebridge/internal/delivery/api/router"
	"carebridge/internal/delivery/api/router/handler"
	"carebridge/internal/domain/constants"
	"carebridge/internal/domain/entity"
	"carebridge/internal/domain/service"
	"carebridge/internal/infra/auth"
	"carebridge/internal/infra/metrics"
	mockSvc "carebridge/internal/mocks/service"
	mockUC "carebridge/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const envProduction = "production"

type serverFixture struct {
	echo        *echo.Echo
	tokens      service.TokenService
	submissions *mockUC.MockSubmissionUsecase
}

func newServerFixture(t *testing.T, env string) *serverFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.SecretKey.Access = "test-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	submissions := mockUC.NewMockSubmissionUsecase(t)

	routerParams := router.RouterParams{
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			DeviceUC: mockUC.NewMockDeviceUsecase(t),
			Logger:   logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: mockUC.NewMockNotificationUsecase(t),
			PermissionUC:   mockUC.NewMockPermissionUsecase(t),
			Logger:         logger,
		}),
		SubmissionHandler: handler.NewSubmissionHandler(handler.SubmissionHandlerParams{
			SubmissionUC: submissions,
			AdEvents:     mockSvc.NewMockAdEventReporter(t),
			Logger:       logger,
		}),
		ActionHandler: handler.NewActionHandler(handler.ActionHandlerParams{
			ActionUC: mockUC.NewMockActionUsecase(t),
			Logger:   logger,
		}),
		DevHandler:     handler.NewDevHandler(tokens),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
		Registry:       metrics.NewRegistry(),
		Config:         cfg,
	}

	return &serverFixture{
		echo:        newEcho(cfg, logger, routerParams),
		tokens:      tokens,
		submissions: submissions,
	}
}

func (f *serverFixture) do(t *testing.T, method, target, body string, roles ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if len(roles) > 0 {
		token, err := f.tokens.IssueAccessToken(uuid.New(), roles, time.Hour)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	f := newServerFixture(t, envProduction)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = f.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServer_APIRequiresToken(t *testing.T) {
	f := newServerFixture(t, envProduction)

	rec := f.do(t, http.MethodGet, "/api/v1/submissions", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestServer_SubmissionsAreGuardianOnly(t *testing.T) {
	f := newServerFixture(t, envProduction)

	f.submissions.EXPECT().
		Snapshot(mock.Anything, mock.Anything).
		Return(entity.SubmissionSnapshot{State: entity.SubmissionIdle, AdState: entity.AdIdle}).
		Once()

	rec := f.do(t, http.MethodGet, "/api/v1/submissions", "", "guardian")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)

	rec = f.do(t, http.MethodGet, "/api/v1/submissions", "", "parent")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_DevRoutesOnlyInDevelop(t *testing.T) {
	body := `{"user_id":"` + uuid.NewString() + `","roles":["parent"]}`

	rec := newServerFixture(t, envProduction).do(t, http.MethodPost, "/dev/token", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = newServerFixture(t, constants.EnvDevelop).do(t, http.MethodPost, "/dev/token", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}
