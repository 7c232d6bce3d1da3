package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// Store persists reviews. Listing methods join each review to its author,
// leaving Reviewer nil when the author no longer resolves.
type Store interface {
	// Upsert writes r keyed by (ApplicantID, ReviewerID) and reports whether
	// no review existed for the key before the write. r is refreshed from the
	// stored row. The flag is a hint: concurrent first submissions may both
	// report true.
	Upsert(ctx context.Context, r *model.Review) (created bool, err error)
	FindMine(ctx context.Context, applicantID, reviewerID uuid.UUID) (*model.Review, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Review, error)
	ListByApplicants(ctx context.Context, applicantIDs []uuid.UUID) ([]model.Review, error)
	Summarize(ctx context.Context, applicantID uuid.UUID) (Summary, error)
	RatingCounts(ctx context.Context, reviewerID uuid.UUID) (map[int]int64, error)
}

// Applicants reads applicants and their jobs, and moves applicant status.
type Applicants interface {
	FindApplicant(ctx context.Context, id uuid.UUID) (*model.Applicant, error)
	FindJob(ctx context.Context, id uuid.UUID) (*model.Job, error)
	// AdvanceStatus sets the status to `to` only while it is still `from` and
	// reports whether a row changed.
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicantStatus) (bool, error)
}

// Notifier announces first submissions to the team.
type Notifier interface {
	ReviewSubmitted(ctx context.Context, applicant model.Applicant, job *model.Job, reviewer model.User, rating int) (int, error)
}

// Auditor appends audit entries.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry) error
}

// Summary is the aggregate of the resolvable reviews of one applicant.
type Summary struct {
	Average    float64
	Total      int64
	ByDecision map[model.Decision]int64
}
