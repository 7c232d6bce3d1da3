package review

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

type reviewKey struct{ applicant, reviewer uuid.UUID }

// memoryStore keeps reviews in memory and resolves authors from users.
type memoryStore struct {
	mu      sync.Mutex
	rows    map[reviewKey]model.Review
	order   []reviewKey
	users   map[uuid.UUID]model.User
	failErr error
}

func newMemoryStore(users ...model.User) *memoryStore {
	s := &memoryStore{rows: map[reviewKey]model.Review{}, users: map[uuid.UUID]model.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memoryStore) deleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *memoryStore) resolve(r model.Review) model.Review {
	if u, ok := s.users[r.ReviewerID]; ok {
		r.Reviewer = &u
	} else {
		r.Reviewer = nil
	}
	return r
}

func (s *memoryStore) Upsert(_ context.Context, r *model.Review) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return false, s.failErr
	}

	key := reviewKey{r.ApplicantID, r.ReviewerID}
	existing, found := s.rows[key]
	now := time.Now()
	if found {
		r.ID = existing.ID
		r.CreatedAt = existing.CreatedAt
	} else {
		r.ID = uuid.New()
		r.CreatedAt = now
		s.order = append(s.order, key)
	}
	r.UpdatedAt = now
	s.rows[key] = *r
	return !found, nil
}

func (s *memoryStore) FindMine(_ context.Context, applicantID, reviewerID uuid.UUID) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[reviewKey{applicantID, reviewerID}]
	if !ok {
		return nil, nil
	}
	r = s.resolve(r)
	return &r, nil
}

func (s *memoryStore) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Review, error) {
	return s.ListByApplicants(ctx, []uuid.UUID{applicantID})
}

func (s *memoryStore) ListByApplicants(_ context.Context, applicantIDs []uuid.UUID) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[uuid.UUID]bool{}
	for _, id := range applicantIDs {
		wanted[id] = true
	}
	var out []model.Review
	for _, key := range s.order {
		if wanted[key.applicant] {
			out = append(out, s.resolve(s.rows[key]))
		}
	}
	return out, nil
}

func (s *memoryStore) Summarize(_ context.Context, applicantID uuid.UUID) (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{ByDecision: map[model.Decision]int64{}}
	total := 0
	for _, key := range s.order {
		r := s.rows[key]
		if key.applicant != applicantID {
			continue
		}
		if _, ok := s.users[r.ReviewerID]; !ok {
			continue
		}
		sum.Total++
		total += r.Rating
		sum.ByDecision[r.Decision]++
	}
	if sum.Total > 0 {
		sum.Average = float64(total) / float64(sum.Total)
	}
	return sum, nil
}

func (s *memoryStore) RatingCounts(_ context.Context, reviewerID uuid.UUID) (map[int]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[int]int64{}
	for _, r := range s.rows {
		if r.ReviewerID == reviewerID {
			counts[r.Rating]++
		}
	}
	return counts, nil
}

type memoryApplicants struct {
	mu         sync.Mutex
	applicants map[uuid.UUID]model.Applicant
	jobs       map[uuid.UUID]model.Job
	advanceErr error
	advances   int
}

func newMemoryApplicants() *memoryApplicants {
	return &memoryApplicants{applicants: map[uuid.UUID]model.Applicant{}, jobs: map[uuid.UUID]model.Job{}}
}

func (m *memoryApplicants) add(status model.ApplicantStatus, job *model.Job) model.Applicant {
	a := model.Applicant{ID: uuid.New(), FullName: "Jane Doe", Status: status}
	if job != nil {
		m.jobs[job.ID] = *job
		jobID := job.ID
		a.JobID = &jobID
	}
	m.applicants[a.ID] = a
	return a
}

func (m *memoryApplicants) status(id uuid.UUID) model.ApplicantStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applicants[id].Status
}

func (m *memoryApplicants) FindApplicant(_ context.Context, id uuid.UUID) (*model.Applicant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.applicants[id]
	if !ok {
		return nil, apperr.NewNotFound("applicant")
	}
	return &a, nil
}

func (m *memoryApplicants) FindJob(_ context.Context, id uuid.UUID) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, apperr.NewNotFound("job")
	}
	return &j, nil
}

func (m *memoryApplicants) AdvanceStatus(_ context.Context, id uuid.UUID, from, to model.ApplicantStatus) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advances++
	if m.advanceErr != nil {
		return false, m.advanceErr
	}
	a := m.applicants[id]
	if a.Status != from {
		return false, nil
	}
	a.Status = to
	m.applicants[id] = a
	return true, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls int
	err   error
	panic bool
}

func (n *recordingNotifier) ReviewSubmitted(context.Context, model.Applicant, *model.Job, model.User, int) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.panic {
		panic("notification store exploded")
	}
	if n.err != nil {
		return 0, n.err
	}
	return 1, nil
}

// staffList serves a fixed roster to a real notification.Broadcaster.
type staffList []model.User

func (l staffList) ActiveStaff(context.Context, []model.Role) ([]model.User, error) {
	return l, nil
}

// brokenNotificationStore rejects every batch.
type brokenNotificationStore struct {
	mu    sync.Mutex
	calls int
}

func (s *brokenNotificationStore) CreateBatch(context.Context, []model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errBoom
}

type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Entry
	err     error
}

func (a *recordingAuditor) Record(_ context.Context, e audit.Entry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, e)
	return nil
}

func (a *recordingAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

var errBoom = errors.New("boom")
