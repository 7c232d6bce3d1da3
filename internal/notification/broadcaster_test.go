package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

type fakeDirectory struct {
	users []model.User
	err   error
	calls int
	roles []model.Role
}

func (f *fakeDirectory) ActiveStaff(_ context.Context, roles []model.Role) ([]model.User, error) {
	f.calls++
	f.roles = roles
	return f.users, f.err
}

type fakeStore struct {
	batches [][]model.Notification
	err     error
}

func (f *fakeStore) CreateBatch(_ context.Context, n []model.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, n)
	return nil
}

type fakePublisher struct {
	events []any
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, payload any) error {
	f.events = append(f.events, payload)
	return f.err
}

func staff(role model.Role, name string) model.User {
	return model.User{ID: uuid.New(), Name: name, Role: role, IsActive: true}
}

func roster() (model.User, []model.User) {
	reviewer := staff(model.RoleReviewer, "Rita")
	return reviewer, []model.User{
		staff(model.RoleSuperadmin, "Sara"),
		staff(model.RoleAdmin, "Adam"),
		reviewer,
		staff(model.RoleReviewer, "Ravi"),
	}
}

func TestReviewSubmitted_ExcludesSubmitter(t *testing.T) {
	reviewer, users := roster()
	dir := &fakeDirectory{users: users}
	store := &fakeStore{}
	log, _ := test.NewNullLogger()
	b := NewBroadcaster(dir, store, log)

	applicant := model.Applicant{ID: uuid.New(), FullName: "Jane Doe"}
	job := &model.Job{ID: uuid.New(), Title: "Backend Engineer"}

	count, err := b.ReviewSubmitted(context.Background(), applicant, job, reviewer, 5)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.ElementsMatch(t, model.StaffRoles(), dir.roles)
	require.Len(t, store.batches, 1)

	batch := store.batches[0]
	require.Len(t, batch, 3)
	for _, n := range batch {
		assert.NotEqual(t, reviewer.ID, n.RecipientID)
		assert.Equal(t, model.NotificationReviewSubmitted, n.Type)
		assert.Equal(t, model.PriorityNormal, n.Priority)
		require.NotNil(t, n.RelatedID)
		assert.Equal(t, applicant.ID, *n.RelatedID)
		assert.Equal(t, "/applicants/"+applicant.ID.String()+"?tab=reviews", n.ActionURL)
		assert.Equal(t, "Rita rated Jane Doe 5/5 for Backend Engineer", n.Message)
		assert.Equal(t, "notifications.review_submitted.title", n.TitleKey)
		assert.Equal(t, 5, n.Params["rating"])
		assert.False(t, n.IsRead)
	}
}

func TestBroadcast_ReadsRosterEveryCall(t *testing.T) {
	reviewer, users := roster()
	dir := &fakeDirectory{users: users}
	store := &fakeStore{}
	b := NewBroadcaster(dir, store, nil)
	applicant := model.Applicant{ID: uuid.New(), FullName: "Jane Doe"}

	_, err := b.ReviewSubmitted(context.Background(), applicant, nil, reviewer, 3)
	require.NoError(t, err)

	dir.users = append(dir.users, staff(model.RoleReviewer, "Newcomer"))
	count, err := b.ReviewSubmitted(context.Background(), applicant, nil, reviewer, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, dir.calls)
	assert.Equal(t, 4, count)
}

func TestBroadcast_ZeroRecipientsWarns(t *testing.T) {
	reviewer := staff(model.RoleReviewer, "Solo")
	store := &fakeStore{}
	log, hook := test.NewNullLogger()
	b := NewBroadcaster(&fakeDirectory{users: []model.User{reviewer}}, store, log)

	count, err := b.ReviewSubmitted(context.Background(), model.Applicant{ID: uuid.New()}, nil, reviewer, 4)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.batches)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestBroadcast_StoreFailure(t *testing.T) {
	reviewer, users := roster()
	b := NewBroadcaster(&fakeDirectory{users: users}, &fakeStore{err: errors.New("insert failed")}, nil)

	count, err := b.ReviewSubmitted(context.Background(), model.Applicant{ID: uuid.New()}, nil, reviewer, 4)

	assert.Error(t, err)
	assert.Zero(t, count)
}

func TestBroadcast_DirectoryFailure(t *testing.T) {
	b := NewBroadcaster(&fakeDirectory{err: errors.New("db down")}, &fakeStore{}, nil)

	_, err := b.Broadcast(context.Background(), Event{Type: model.NotificationCommentAdded})

	assert.ErrorContains(t, err, "db down")
}

func TestBroadcast_PublishesEvent(t *testing.T) {
	reviewer, users := roster()
	pub := &fakePublisher{}
	b := NewBroadcaster(&fakeDirectory{users: users}, &fakeStore{}, nil,
		WithPublisher(pub), WithBaseURL("https://hire.example.com"))
	applicant := model.Applicant{ID: uuid.New(), FullName: "Jane Doe"}

	_, err := b.ReviewSubmitted(context.Background(), applicant, nil, reviewer, 2)
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	msg := pub.events[0].(BroadcastMessage)
	assert.Len(t, msg.Recipients, 3)
	assert.Equal(t, applicant.ID, msg.RelatedID)
	assert.Equal(t, "https://hire.example.com/applicants/"+applicant.ID.String()+"?tab=reviews", msg.Link)
}

func TestBroadcast_PublishFailureIsSwallowed(t *testing.T) {
	reviewer, users := roster()
	log, hook := test.NewNullLogger()
	b := NewBroadcaster(&fakeDirectory{users: users}, &fakeStore{}, log,
		WithPublisher(&fakePublisher{err: errors.New("broker down")}))

	count, err := b.ReviewSubmitted(context.Background(), model.Applicant{ID: uuid.New()}, nil, reviewer, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestCommentAdded_PrivateHidesContent(t *testing.T) {
	author, users := roster()
	store := &fakeStore{}
	b := NewBroadcaster(&fakeDirectory{users: users}, store, nil)
	applicant := model.Applicant{ID: uuid.New(), FullName: "Jane Doe"}

	_, err := b.CommentAdded(context.Background(), applicant, author, model.Comment{Content: "secret", IsPrivate: true})
	require.NoError(t, err)
	_, err = b.CommentAdded(context.Background(), applicant, author, model.Comment{Content: "strong system design"})
	require.NoError(t, err)

	require.Len(t, store.batches, 2)
	private := store.batches[0][0]
	public := store.batches[1][0]

	assert.NotContains(t, private.Params, "preview")
	assert.NotContains(t, private.Message, "secret")
	assert.Equal(t, "strong system design", public.Params["preview"])
	assert.Equal(t, model.PriorityLow, public.Priority)
	assert.Equal(t, "/applicants/"+applicant.ID.String()+"?tab=notes", public.ActionURL)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))
	assert.Equal(t, "ab…", preview("abc", 2))
	assert.Equal(t, "ééé…", preview("éééé", 3))
}
