package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("rating"), http.StatusBadRequest},
		{"not found", NewNotFound("applicant"), http.StatusNotFound},
		{"authorization", NewAuthorization("nope"), http.StatusForbidden},
		{"duplicate", NewDuplicate("review"), http.StatusConflict},
		{"wrapped", fmt.Errorf("submit: %w", NewNotFound("applicant")), http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestFields(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewValidation("rating", "decision"))
	assert.Equal(t, []string{"rating", "decision"}, Fields(err))
	assert.Nil(t, Fields(errors.New("boom")))
	assert.EqualError(t, NewValidation("jobId"), "invalid field(s): jobId")
}

func TestUpstream(t *testing.T) {
	assert.NoError(t, Upstream("audit", nil))

	cause := errors.New("connection refused")
	err := Upstream("notification", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}
