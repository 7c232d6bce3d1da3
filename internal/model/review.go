package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Decision is a reviewer's hiring recommendation.
type Decision string

// Review decisions, strongest yes first
const (
	DecisionStrongHire     Decision = "strong_hire"
	DecisionRecommended    Decision = "recommended"
	DecisionNeutral        Decision = "neutral"
	DecisionNotRecommended Decision = "not_recommended"
	DecisionStrongNo       Decision = "strong_no"
)

// Decisions returns every decision value in display order.
func Decisions() []Decision {
	return []Decision{
		DecisionStrongHire,
		DecisionRecommended,
		DecisionNeutral,
		DecisionNotRecommended,
		DecisionStrongNo,
	}
}

// Review is one reviewer's evaluation of one applicant.
// (ApplicantID, ReviewerID) is unique, a resubmission updates the row in place.
type Review struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicantID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_applicant_reviewer,priority:1" json:"applicantId"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID" json:"-"`
	JobID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"jobId"`
	ReviewerID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_applicant_reviewer,priority:2;index" json:"reviewerId"`
	Reviewer    *User      `gorm:"foreignKey:ReviewerID" json:"-"`

	Rating       int                                `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Decision     Decision                           `gorm:"type:text;not null" json:"decision"`
	Pros         pq.StringArray                     `gorm:"type:text[]" json:"pros"`
	Cons         pq.StringArray                     `gorm:"type:text[]" json:"cons"`
	PrivateNotes *string                            `gorm:"type:text" json:"privateNotes,omitempty"`
	Summary      *string                            `gorm:"type:text" json:"summary,omitempty"`
	SkillRatings datatypes.JSONType[map[string]int] `gorm:"type:jsonb" json:"skillRatings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordID implements integrity.Authored.
func (r Review) RecordID() uuid.UUID { return r.ID }

// AuthorRef implements integrity.Authored.
func (r Review) AuthorRef() uuid.UUID { return r.ReviewerID }

// AuthorResolved implements integrity.Authored.
func (r Review) AuthorResolved() bool { return r.Reviewer != nil }

// ReviewView is a Review joined with its author, as returned by listings.
type ReviewView struct {
	Review
	Reviewer Author `json:"reviewer"`
}

// View projects r for listings. r.Reviewer must be resolved.
func (r Review) View() ReviewView {
	v := ReviewView{Review: r}
	if r.Reviewer != nil {
		v.Reviewer = r.Reviewer.AsAuthor()
	}
	return v
}
