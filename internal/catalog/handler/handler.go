// Package handler translates HTTP traffic to service calls and sentinel
// errors back to statuses. Nothing below this layer sees gin.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"publisher-catalog/internal/catalog/model"
	"publisher-catalog/internal/shared/response"
	"publisher-catalog/pkg/logger"
)

// parseIDParam reads a numeric path parameter, replying 400 when the
// value does not parse.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Invalid value '%s' for parameter '%s'", raw, name))
		return 0, false
	}
	return id, true
}

// bindAndValidate decodes the JSON body into req and runs its validation
// rules. On failure it writes the error response and returns false.
func bindAndValidate(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON format")
		return false
	}

	if err := req.Validate(); err != nil {
		var fields validation.Errors
		if errors.As(err, &fields) {
			response.ValidationError(c, fields)
		} else {
			response.Error(c, http.StatusBadRequest, err.Error())
		}
		return false
	}

	return true
}

// respondError maps sentinel errors to HTTP statuses. Anything
// unclassified is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound),
		errors.Is(err, model.ErrBookNotFound),
		errors.Is(err, model.ErrMagazineNotFound),
		errors.Is(err, model.ErrPublicationNotFound),
		errors.Is(err, model.ErrAuthorsNotFound):
		response.Error(c, http.StatusNotFound, err.Error())

	case errors.Is(err, model.ErrDuplicateAuthorName),
		errors.Is(err, model.ErrDuplicateISBN),
		errors.Is(err, model.ErrDuplicateTitle):
		response.Error(c, http.StatusConflict, err.Error())

	case errors.Is(err, model.ErrConstraintViolation):
		response.Error(c, http.StatusConflict, "Duplicate value for unique field")

	default:
		logger.Error("request failed", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
