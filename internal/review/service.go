// Package review implements the review lifecycle: one review per reviewer and
// applicant, the status gatekeeper, and the filtered read paths.
package review

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/integrity"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

const maxBatchApplicants = 200

// SubmitInput is the body of a review submission.
type SubmitInput struct {
	ApplicantID  uuid.UUID      `json:"applicantId" validate:"required"`
	JobID        *uuid.UUID     `json:"jobId"`
	Rating       int            `json:"rating" validate:"min=1,max=5"`
	Decision     model.Decision `json:"decision" validate:"required,oneof=strong_hire recommended neutral not_recommended strong_no"`
	Pros         []string       `json:"pros"`
	Cons         []string       `json:"cons"`
	PrivateNotes *string        `json:"privateNotes"`
	Summary      *string        `json:"summary"`
	SkillRatings map[string]int `json:"skillRatings" validate:"omitempty,dive,keys,required,endkeys,min=1,max=5"`
}

// SubmitResult is the outcome of Submit.
type SubmitResult struct {
	Review         model.Review
	IsNewReview    bool
	PreviousStatus model.ApplicantStatus
	Status         model.ApplicantStatus
	StatusChanged  bool
}

// Average is the rating summary of one applicant.
type Average struct {
	AverageRating     float64                  `json:"averageRating"`
	TotalReviews      int64                    `json:"totalReviews"`
	DecisionHistogram map[model.Decision]int64 `json:"decisionHistogram"`
}

// Badge is the compact form of a review shown in applicant lists.
type Badge struct {
	ReviewID     uuid.UUID      `json:"reviewId"`
	ReviewerID   uuid.UUID      `json:"reviewerId"`
	ReviewerName string         `json:"reviewerName"`
	ReviewerRole model.Role     `json:"reviewerRole"`
	Rating       int            `json:"rating"`
	Decision     model.Decision `json:"decision"`
}

// RatingCount is one bar of a rating distribution.
type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// Distribution is how often a reviewer gave each rating.
type Distribution struct {
	ReviewerID   uuid.UUID     `json:"reviewerId"`
	Distribution []RatingCount `json:"distribution"`
	Total        int64         `json:"total"`
}

// Service runs review submissions and reads.
type Service struct {
	reviews    Store
	applicants Applicants
	notifier   Notifier
	auditor    Auditor
	log        logrus.FieldLogger
}

// NewService wires a Service. notifier and auditor may be nil.
func NewService(reviews Store, applicants Applicants, notifier Notifier, auditor Auditor, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		reviews:    reviews,
		applicants: applicants,
		notifier:   notifier,
		auditor:    auditor,
		log:        log,
	}
}

// Submit creates or updates the actor's review of an applicant.
//
// Only the review write decides the outcome. The status transition, the team
// broadcast and the audit entry run afterwards; their failures are logged and
// never undo or fail the submission.
func (s *Service) Submit(ctx context.Context, actor model.User, in SubmitInput) (*SubmitResult, error) {
	if in.ApplicantID == uuid.Nil {
		return nil, apperr.NewValidation("applicantId")
	}

	applicant, job, err := s.resolveJob(ctx, in.ApplicantID, in.JobID)
	if err != nil {
		return nil, err
	}

	if err := utilities.ValidatePayload(in); err != nil {
		return nil, err
	}

	r := &model.Review{
		ApplicantID:  applicant.ID,
		JobID:        job.ID,
		ReviewerID:   actor.ID,
		Rating:       in.Rating,
		Decision:     in.Decision,
		Pros:         pq.StringArray(nonNil(in.Pros)),
		Cons:         pq.StringArray(nonNil(in.Cons)),
		PrivateNotes: in.PrivateNotes,
		Summary:      in.Summary,
		SkillRatings: datatypes.NewJSONType(nonNilMap(in.SkillRatings)),
	}

	created, err := s.reviews.Upsert(ctx, r)
	if err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"applicant_id": applicant.ID,
		"review_id":    r.ID,
		"reviewer_id":  actor.ID,
	})

	result := &SubmitResult{
		Review:         *r,
		IsNewReview:    created,
		PreviousStatus: applicant.Status,
		Status:         applicant.Status,
	}

	verdict := NextStatus(actor.Role, applicant.Status, created)
	switch verdict.Reason {
	case ReasonDowngradeBlocked:
		log.WithField("status", applicant.Status).Info("Reviewer cannot move applicant out of an advanced stage")
	case ReasonUnknownRole:
		log.WithField("role", actor.Role).Warn("Unrecognized role submitted a review, status unchanged")
	}

	if verdict.Changed {
		moved, err := s.applicants.AdvanceStatus(ctx, applicant.ID, applicant.Status, verdict.Next)
		switch {
		case err != nil:
			log.WithError(err).Error("Failed to advance applicant status after review")
		case moved:
			result.Status = verdict.Next
			result.StatusChanged = true
			s.record(ctx, log, audit.Entry{
				Actor:        actor,
				Action:       audit.ActionApplicantStatus,
				ResourceType: "applicant",
				ResourceID:   applicant.ID,
				Description:  fmt.Sprintf("%s moved from %s to %s after first review", applicant.FullName, applicant.Status, verdict.Next),
				Metadata:     map[string]any{"from": applicant.Status, "to": verdict.Next, "reviewId": r.ID},
			})
		default:
			log.Debug("Applicant status already changed by another request")
		}
	}

	if created && s.notifier != nil {
		_ = apperr.Contain(log, "notification", func() error {
			_, err := s.notifier.ReviewSubmitted(ctx, *applicant, job, actor, r.Rating)
			return err
		})
	}

	action, verb := audit.ActionReviewUpdated, "updated"
	if created {
		action, verb = audit.ActionReviewCreated, "submitted"
	}
	s.record(ctx, log, audit.Entry{
		Actor:        actor,
		Action:       action,
		ResourceType: "review",
		ResourceID:   r.ID,
		Description:  fmt.Sprintf("%s %s a review for %s", actor.DisplayName(), verb, applicant.FullName),
		Metadata: map[string]any{
			"applicantId": applicant.ID,
			"jobId":       job.ID,
			"rating":      r.Rating,
			"decision":    r.Decision,
		},
	})

	return result, nil
}

// resolveJob loads the applicant and the job of the review. A missing jobID is
// taken from the applicant.
func (s *Service) resolveJob(ctx context.Context, applicantID uuid.UUID, jobID *uuid.UUID) (*model.Applicant, *model.Job, error) {
	applicant, err := s.applicants.FindApplicant(ctx, applicantID)
	if err != nil {
		return nil, nil, err
	}

	if jobID == nil || *jobID == uuid.Nil {
		jobID = applicant.JobID
	}
	if jobID == nil || *jobID == uuid.Nil {
		return nil, nil, apperr.NewValidation("jobId")
	}

	job, err := s.applicants.FindJob(ctx, *jobID)
	if err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return nil, nil, apperr.NewValidation("jobId")
		}
		return nil, nil, err
	}
	return applicant, job, nil
}

func (s *Service) record(ctx context.Context, log logrus.FieldLogger, e audit.Entry) {
	if s.auditor == nil {
		return
	}
	_ = apperr.Contain(log, "audit", func() error {
		return s.auditor.Record(ctx, e)
	})
}

// ByApplicant lists the reviews of an applicant as seen by actor.
// Reviews whose author was deleted are dropped, then private notes are
// hidden unless actor wrote the review or holds an oversight role.
func (s *Service) ByApplicant(ctx context.Context, actor model.User, applicantID uuid.UUID) ([]model.ReviewView, error) {
	if _, err := s.applicants.FindApplicant(ctx, applicantID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	reviews = integrity.FilterValid(reviews, s.log, "review")

	views := make([]model.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, RedactFor(actor, r).View())
	}
	return views, nil
}

// RedactFor returns r with PrivateNotes cleared unless actor may see them.
func RedactFor(actor model.User, r model.Review) model.Review {
	if r.ReviewerID == actor.ID || actor.Role.IsOversight() {
		return r
	}
	r.PrivateNotes = nil
	return r
}

// Mine returns the actor's own review of an applicant, or nil.
func (s *Service) Mine(ctx context.Context, actor model.User, applicantID uuid.UUID) (*model.ReviewView, error) {
	r, err := s.reviews.FindMine(ctx, applicantID, actor.ID)
	if err != nil || r == nil {
		return nil, err
	}
	v := r.View()
	return &v, nil
}

// AverageFor summarizes the resolvable reviews of an applicant.
// The histogram always carries every decision.
func (s *Service) AverageFor(ctx context.Context, applicantID uuid.UUID) (*Average, error) {
	sum, err := s.reviews.Summarize(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	histogram := make(map[model.Decision]int64, len(model.Decisions()))
	for _, d := range model.Decisions() {
		histogram[d] = sum.ByDecision[d]
	}

	return &Average{
		AverageRating:     math.Round(sum.Average*100) / 100,
		TotalReviews:      sum.Total,
		DecisionHistogram: histogram,
	}, nil
}

// BatchBadges groups review badges by applicant for list views.
// Every requested applicant has an entry, possibly empty.
func (s *Service) BatchBadges(ctx context.Context, applicantIDs []uuid.UUID) (map[uuid.UUID][]Badge, error) {
	if len(applicantIDs) == 0 || len(applicantIDs) > maxBatchApplicants {
		return nil, apperr.NewValidation("applicantIds")
	}

	reviews, err := s.reviews.ListByApplicants(ctx, applicantIDs)
	if err != nil {
		return nil, err
	}
	reviews = integrity.FilterValid(reviews, s.log, "review")

	grouped := make(map[uuid.UUID][]Badge, len(applicantIDs))
	for _, id := range applicantIDs {
		grouped[id] = []Badge{}
	}
	for _, r := range reviews {
		grouped[r.ApplicantID] = append(grouped[r.ApplicantID], Badge{
			ReviewID:     r.ID,
			ReviewerID:   r.ReviewerID,
			ReviewerName: r.Reviewer.DisplayName(),
			ReviewerRole: r.Reviewer.Role,
			Rating:       r.Rating,
			Decision:     r.Decision,
		})
	}
	return grouped, nil
}

// RatingDistribution counts the ratings given by reviewerID, or by the actor
// when reviewerID is nil. Only oversight roles may look at someone else.
func (s *Service) RatingDistribution(ctx context.Context, actor model.User, reviewerID *uuid.UUID) (*Distribution, error) {
	target := actor.ID
	if reviewerID != nil && *reviewerID != uuid.Nil {
		target = *reviewerID
	}
	if target != actor.ID && !actor.Role.IsOversight() {
		return nil, apperr.NewAuthorization("You can only view your own rating distribution")
	}

	counts, err := s.reviews.RatingCounts(ctx, target)
	if err != nil {
		return nil, err
	}

	dist := &Distribution{ReviewerID: target, Distribution: make([]RatingCount, 0, 5)}
	for rating := 1; rating <= 5; rating++ {
		dist.Distribution = append(dist.Distribution, RatingCount{Rating: rating, Count: counts[rating]})
		dist.Total += counts[rating]
	}
	return dist, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilMap(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
