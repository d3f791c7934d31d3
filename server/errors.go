package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etnz/equity"
	"github.com/etnz/equity/logger"
)

// apiError is the body of every error response.
type apiError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []fieldError `json:"fields,omitempty"`
	StatusCode int          `json:"-"`
}

// fieldError is an invalid parameter.
type fieldError struct {
	Field  string `json:"field"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

var (
	errInvalidInput = &apiError{Code: "INVALID_INPUT", Message: "Invalid request body", StatusCode: http.StatusBadRequest}
	errInternal     = &apiError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// invalidParameters collects every *equity.InvalidParameterError in err,
// looking into joined and wrapped errors.
func invalidParameters(err error) []fieldError {
	var fields []fieldError
	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *equity.InvalidParameterError:
			fields = append(fields, fieldError{Field: e.Field, Value: e.Value, Reason: e.Reason})
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		default:
			walk(errors.Unwrap(err))
		}
	}
	walk(err)
	return fields
}

// respondWithError writes a consistent JSON error response: invalid parameters
// are listed, other errors are logged and hidden behind a generic message.
func respondWithError(c *gin.Context, err error) {
	if fields := invalidParameters(err); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": &apiError{
			Code:    "INVALID_PARAMETER",
			Message: err.Error(),
			Fields:  fields,
		}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(errInternal.StatusCode, gin.H{"error": errInternal})
}

// respondWithInvalidInput rejects a body that cannot be decoded.
func respondWithInvalidInput(c *gin.Context, err error) {
	c.JSON(errInvalidInput.StatusCode, gin.H{"error": &apiError{
		Code:    errInvalidInput.Code,
		Message: errInvalidInput.Message + ": " + err.Error(),
	}})
}
