package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-ledger/internal/api/shared/constants"
)

// SetupCORS configures CORS middleware open to every origin
func SetupCORS() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", constants.REQUEST_ID_HEADER},
		ExposeHeaders:    []string{"Content-Length", constants.REQUEST_ID_HEADER, constants.RETRY_AFTER_HEADER},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}
