// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicantStatus is the pipeline stage of an applicant.
type ApplicantStatus string

// Applicant pipeline statuses
const (
	ApplicantStatusNew          ApplicantStatus = "new"
	ApplicantStatusEvaluated    ApplicantStatus = "evaluated"
	ApplicantStatusInterviewing ApplicantStatus = "interviewing"
	ApplicantStatusHired        ApplicantStatus = "hired"
	ApplicantStatusRejected     ApplicantStatus = "rejected"
	ApplicantStatusArchived     ApplicantStatus = "archived"
)

// IsAdvanced reports whether s is a stage reviewers may not move an applicant out of.
func (s ApplicantStatus) IsAdvanced() bool {
	switch s {
	case ApplicantStatusInterviewing, ApplicantStatusHired, ApplicantStatusRejected:
		return true
	}
	return false
}

// Job is an open position applicants apply to.
type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Department string    `gorm:"type:text" json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Applicant is a candidate in the hiring pipeline.
// The application pipeline owns creation, the review workflow only moves Status.
type Applicant struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	FullName  string          `gorm:"type:text;not null" json:"fullName"`
	Email     string          `gorm:"type:text" json:"email"`
	Status    ApplicantStatus `gorm:"type:text;not null;default:'new';index" json:"status"`
	JobID     *uuid.UUID      `gorm:"type:uuid;index" json:"jobId"`
	Job       *Job            `gorm:"foreignKey:JobID" json:"-"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
