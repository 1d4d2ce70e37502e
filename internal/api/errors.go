package api

import (
	"errors"
	"net/http"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

const (
	msgBadRequest  = "Bad Request"
	msgNotFound    = "Not Found"
	msgServerFault = "Internal Server Error"

	msgInvalidSortBy = "invalid sort_by query"
	msgInvalidOrder  = "invalid order query"
)

// PostgreSQL error codes mapped to client errors
const (
	pqInvalidTextRepresentation = "22P02"
	pqUndefinedColumn           = "42703"
	pqNotNullViolation          = "23502"
	pqNumericValueOutOfRange    = "22003"
	pqForeignKeyViolation       = "23503"
)

// errorMiddleware turns the last error attached by a handler into exactly one
// {"msg": ...} response
func errorMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := classifyError(err)
		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("path", c.Request.URL.Path).
				Str("request_id", c.GetString(requestIDKey)).
				Msg("Unhandled error")
		}

		c.AbortWithStatusJSON(status, gin.H{"msg": msg})
	}
}

// classifyError maps an error to a status code and client-safe message. Store
// codes are checked before application errors, first match wins.
func classifyError(err error) (int, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqInvalidTextRepresentation, pqUndefinedColumn, pqNotNullViolation, pqNumericValueOutOfRange:
			return http.StatusBadRequest, msgBadRequest
		case pqForeignKeyViolation:
			return http.StatusNotFound, msgNotFound
		}
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Msg
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, msgBadRequest
	}

	return http.StatusInternalServerError, msgServerFault
}
