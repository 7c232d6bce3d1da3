package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContain(t *testing.T) {
	t.Run("success is silent", func(t *testing.T) {
		log, hook := test.NewNullLogger()
		err := Contain(log, "notification", func() error { return nil })
		assert.NoError(t, err)
		assert.Empty(t, hook.Entries)
	})

	t.Run("error is wrapped and logged", func(t *testing.T) {
		log, hook := test.NewNullLogger()
		cause := errors.New("insert failed")

		err := Contain(log, "audit", func() error { return cause })

		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, "audit", upstream.Subsystem)
		assert.ErrorIs(t, err, cause)
		require.Len(t, hook.Entries, 1)
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "audit", hook.LastEntry().Data["subsystem"])
	})

	t.Run("panic is recovered", func(t *testing.T) {
		log, hook := test.NewNullLogger()

		err := Contain(log, "queue", func() error { panic("broker gone") })

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker gone")
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
		assert.Len(t, hook.Entries, 1)
	})
}
