package utilities

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
)

// WriteError answers with the status apperr assigns to err.
// duplicateMessage replaces the message of a DuplicateKeyError when not empty.
func WriteError(c *gin.Context, err error, duplicateMessage string) {
	status := apperr.HTTPStatus(err)

	message := err.Error()
	var duplicate *apperr.DuplicateKeyError
	switch {
	case errors.As(err, &duplicate) && duplicateMessage != "":
		message = duplicateMessage
	case status == http.StatusInternalServerError:
		message = fmt.Sprintf("Database error: %s", err.Error())
	}

	c.JSON(status, ErrorResponse{
		Error:  message,
		Fields: apperr.Fields(err),
	})
}

// ParseUUIDParam reads the path parameter name as a UUID.
// It answers 400 and returns false when the parameter is malformed.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  fmt.Sprintf("Invalid %s", name),
			Fields: []string{name},
		})
		return uuid.Nil, false
	}
	return id, true
}
