package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
	"github.com/RazanRezq/jadara-sub002/internal/queue"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"  YES \n", true},
		{"yes", true},
		{"no\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tc := range tests {
		got, err := confirm(strings.NewReader(tc.input))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestCleanDBCancelled(t *testing.T) {
	cmd := cleanDBCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("no\n"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Operation cancelled.")
}

func TestGenerateRandomString(t *testing.T) {
	a, err := generateRandomString(8)
	require.NoError(t, err)
	b, err := generateRandomString(8)
	require.NoError(t, err)
	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

func TestLogBroadcast(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	body, err := json.Marshal(notification.BroadcastMessage{
		Type:       model.NotificationReviewSubmitted,
		RelatedID:  uuid.New(),
		Recipients: []uuid.UUID{uuid.New(), uuid.New()},
		Title:      "New review submitted",
	})
	require.NoError(t, err)

	require.NoError(t, logBroadcast(log, queue.Message{Type: notification.BroadcastEventType, Body: body}))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "New review submitted", entry.Message)
	assert.Equal(t, 2, entry.Data["recipients"])

	require.NoError(t, logBroadcast(log, queue.Message{Type: "something.else"}))
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)

	assert.Error(t, logBroadcast(log, queue.Message{Type: notification.BroadcastEventType, Body: []byte("{")}))
}
