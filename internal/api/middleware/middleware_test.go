package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger/internal/api/middleware"
	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/mocks"
	"github.com/feral-file/ff-ledger/internal/ratelimit"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	_ = logger.Initialize(logger.Config{Debug: true})
	m.Run()
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": logger.RequestIDFromContext(c.Request.Context())})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var resp apierrors.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestLogger_GeneratesRequestID(t *testing.T) {
	router := newTestRouter(middleware.Logger())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	requestID := w.Header().Get(constants.REQUEST_ID_HEADER)
	assert.Len(t, requestID, 26)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, requestID, body["request_id"])
}

func TestLogger_KeepsIncomingRequestID(t *testing.T) {
	router := newTestRouter(middleware.Logger())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.REQUEST_ID_HEADER, "req-123")
	w := serve(router, req)

	assert.Equal(t, "req-123", w.Header().Get(constants.REQUEST_ID_HEADER))
	assert.Contains(t, w.Body.String(), "req-123")
}

func TestRecovery(t *testing.T) {
	router := newTestRouter(middleware.Recovery())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeError(t, w).Code)
}

func TestMaintenance(t *testing.T) {
	tests := []struct {
		name       string
		sc         *schema.ServiceContext
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name:       "open",
			sc:         &schema.ServiceContext{ID: schema.SERVICE_CONTEXT_ID},
			wantStatus: http.StatusOK,
		},
		{
			name:       "in maintenance",
			sc:         &schema.ServiceContext{ID: schema.SERVICE_CONTEXT_ID, Maintenance: true},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   apierrors.ErrCodeMaintenance,
		},
		{
			name:       "lookup fails",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apierrors.ErrCodeDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockMaintenanceService(ctrl)
			svc.EXPECT().Get(gomock.Any()).Return(tt.sc, tt.err)

			w := serve(newTestRouter(middleware.Maintenance(svc)), httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockRateLimiter(ctrl)
	router := newTestRouter(middleware.RateLimit(l))

	l.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(ratelimit.Decision{Allowed: true, Remaining: 1}, nil)
	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	l.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(ratelimit.Decision{RetryAfter: 1500 * time.Millisecond}, nil)
	w = serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get(constants.RETRY_AFTER_HEADER))
	assert.Equal(t, apierrors.ErrCodeRateLimited, decodeError(t, w).Code)

	l.EXPECT().Allow(gomock.Any(), "192.0.2.1").Return(ratelimit.Decision{}, context.DeadlineExceeded)
	w = serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
