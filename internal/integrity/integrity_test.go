package integrity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

func reviewBy(author *model.User) model.Review {
	r := model.Review{ID: uuid.New(), ReviewerID: uuid.New(), Reviewer: author}
	if author != nil {
		r.ReviewerID = author.ID
	}
	return r
}

func TestFilterValid_DropsOrphansInOrder(t *testing.T) {
	log, hook := test.NewNullLogger()
	alice := &model.User{ID: uuid.New(), Name: "Alice"}
	bob := &model.User{ID: uuid.New(), Name: "Bob"}

	first := reviewBy(alice)
	orphan := reviewBy(nil)
	last := reviewBy(bob)

	got := FilterValid([]model.Review{first, orphan, last}, log, "review")

	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, last.ID, got[1].ID)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, orphan.ID, entry.Data["record_id"])
	assert.Equal(t, orphan.ReviewerID, entry.Data["author_ref"])
	assert.Equal(t, "review", entry.Data["kind"])
}

func TestFilterValid_Comments(t *testing.T) {
	log, hook := test.NewNullLogger()
	author := &model.User{ID: uuid.New()}

	comments := []model.Comment{
		{ID: uuid.New(), AuthorID: uuid.New()},
		{ID: uuid.New(), AuthorID: author.ID, Author: author},
		{ID: uuid.New(), AuthorID: uuid.New()},
	}

	got := FilterValid(comments, log, "comment")

	require.Len(t, got, 1)
	assert.Equal(t, comments[1].ID, got[0].ID)
	assert.Len(t, hook.Entries, 2)
}

func TestFilterValid_EmptyAndNilLogger(t *testing.T) {
	assert.Empty(t, FilterValid([]model.Review{}, nil, "review"))
	assert.Empty(t, FilterValid([]model.Review{reviewBy(nil)}, nil, "review"))
}
