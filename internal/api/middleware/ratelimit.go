package middleware

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/ratelimit"
)

// RateLimit admits requests per client IP and rejects the rest with 429.
// Limiter failures let the request through.
func RateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			if !errors.Is(err, ratelimit.ErrLimiterClosed) {
				logger.WarnCtx(c.Request.Context(), "Rate limiter failed, admitting request",
					zap.Error(err),
					zap.String("client_ip", c.ClientIP()),
				)
			}
			c.Next()
			return
		}

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header(constants.RETRY_AFTER_HEADER, strconv.Itoa(seconds))
			abortWithError(c, apierrors.NewRateLimitedError("Too many requests"))
			return
		}

		c.Next()
	}
}
