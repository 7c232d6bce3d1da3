// Package apperr defines the error taxonomy shared by the review workflow
// and maps it onto HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError reports a malformed or out-of-range payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field(s): %s", strings.Join(e.Fields, ", "))
}

// NewValidation returns a ValidationError for the given fields.
func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFoundError reports a missing applicant, review, job or user.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFound returns a NotFoundError for resource.
func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// AuthorizationError reports an actor touching something they do not own.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// NewAuthorization returns an AuthorizationError with reason.
func NewAuthorization(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

// DuplicateKeyError reports a unique key violation that slipped past an upsert.
type DuplicateKeyError struct {
	Resource string
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate " + e.Resource
}

// NewDuplicate returns a DuplicateKeyError for resource.
func NewDuplicate(resource string) *DuplicateKeyError {
	return &DuplicateKeyError{Resource: resource}
}

// UpstreamError wraps a failure of a secondary subsystem (notification, audit, queue).
// It is logged by the caller and never returned to a client.
type UpstreamError struct {
	Subsystem string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Subsystem, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err as an UpstreamError of subsystem, nil stays nil.
func Upstream(subsystem string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Subsystem: subsystem, Err: err}
}

// HTTPStatus maps err onto the status code a handler should answer with.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		authz      *AuthorizationError
		duplicate  *DuplicateKeyError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &authz):
		return http.StatusForbidden
	case errors.As(err, &duplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fields returns the offending fields of a ValidationError, if err is one.
func Fields(err error) []string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Fields
	}
	return nil
}
