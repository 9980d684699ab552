package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/ledger"
	"github.com/feral-file/ff-ledger/internal/logger"
)

// Maintenance rejects requests with 503 while the service is in maintenance mode
func Maintenance(svc ledger.MaintenanceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := svc.Get(c.Request.Context())
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
			abortWithError(c, apierrors.FromDomainError(err, "Failed to get maintenance status"))
			return
		}

		if sc.Maintenance {
			abortWithError(c, apierrors.NewMaintenanceError("Service is under maintenance"))
			return
		}

		c.Next()
	}
}
