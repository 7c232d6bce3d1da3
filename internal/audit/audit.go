// Package audit appends one entry per state changing call.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// Audited actions
const (
	ActionReviewCreated   = "review.created"
	ActionReviewUpdated   = "review.updated"
	ActionCommentCreated  = "comment.created"
	ActionCommentDeleted  = "comment.deleted"
	ActionStaffCreated    = "staff.created"
	ActionStaffActivated  = "staff.activated"
	ActionStaffSuspended  = "staff.deactivated"
	ActionStaffDeleted    = "staff.deleted"
	ActionApplicantStatus = "applicant.status_changed"
)

// Store appends audit entries.
type Store interface {
	Append(ctx context.Context, entry *model.AuditLog) error
}

// Entry is the input of Record.
type Entry struct {
	Actor        model.User
	Action       string
	ResourceType string
	ResourceID   uuid.UUID
	Description  string
	Metadata     map[string]any
	Severity     model.AuditSeverity
}

// Recorder writes entries to a Store.
type Recorder struct {
	store Store
}

// NewRecorder returns a Recorder backed by store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record appends e. Severity defaults to info.
func (r *Recorder) Record(ctx context.Context, e Entry) error {
	severity := e.Severity
	if severity == "" {
		severity = model.SeverityInfo
	}

	entry := &model.AuditLog{
		ActorName:    e.Actor.DisplayName(),
		ActorRole:    e.Actor.Role,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID.String(),
		Description:  e.Description,
		Metadata:     datatypes.JSONMap(e.Metadata),
		Severity:     severity,
	}
	if e.Actor.ID != uuid.Nil {
		actorID := e.Actor.ID
		entry.ActorID = &actorID
	}

	if err := r.store.Append(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Action, err)
	}
	return nil
}
