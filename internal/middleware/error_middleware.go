package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursereg/internal/app/models/dto"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
	"github.com/yigit/coursereg/internal/pkg/logger"
)

// --- Central Error Handling Middleware/Function ---

// StatusFor returns the HTTP status and client message for err.
// Every failure is reported as 400 so existing clients keep working.
func StatusFor(err error) (int, string) {
	if regErr, ok := apperrors.AsRegistrationError(err); ok {
		switch regErr.Kind {
		case apperrors.KindNotFound, apperrors.KindAlreadyStarted, apperrors.KindAlreadyRegistered:
			return http.StatusBadRequest, regErr.Message
		}
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		return http.StatusBadRequest, custom.Error()
	}

	return http.StatusBadRequest, err.Error()
}

// HandleAPIError writes the error response for err and aborts the chain
func HandleAPIError(c *gin.Context, err error) {
	status, message := StatusFor(err)

	if !isExpected(err) {
		logger.Error().Err(err).
			Str("requestID", RequestID(c)).
			Str("path", c.FullPath()).
			Msg("Unexpected error while handling request")
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

func isExpected(err error) bool {
	if _, _, ok := apperrors.KindOf(err); ok {
		return true
	}
	return apperrors.Is(err, apperrors.ErrBadRequest, apperrors.ErrValidationFailed)
}
