package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger/internal/logger"
)

// respondError sends the error envelope for err. Errors that are not APIErrors become 500s.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	status := apiErr.StatusCode()
	if status >= 500 {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("code", string(apiErr.Code)),
		)
	}

	c.JSON(status, apierrors.Response{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondError(c, apierrors.NewValidationError(details))
}
