package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/metrics"
)

// abortWithError stops the chain with the error envelope
func abortWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.AbortWithStatusJSON(apiErr.StatusCode(), apierrors.Response{Error: apiErr})
}

// Logger returns a gin middleware for structured logging using zap.
// Every request gets a request ID, taken from the X-Request-ID header when the caller sends one.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader(constants.REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = ulid.MustNewDefault(start).String()
		}
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Header(constants.REQUEST_ID_HEADER, requestID)

		c.Next()

		status := c.Writer.Status()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), status, start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				abortWithError(c, apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}
