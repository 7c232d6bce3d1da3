// Package comment implements team notes on applicants.
package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/integrity"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

// Store persists comments. Listings leave Author nil when it does not resolve.
type Store interface {
	Create(ctx context.Context, c *model.Comment) error
	Find(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Applicants finds the applicant a comment is attached to.
type Applicants interface {
	FindApplicant(ctx context.Context, id uuid.UUID) (*model.Applicant, error)
}

// Notifier announces new comments to the team.
type Notifier interface {
	CommentAdded(ctx context.Context, applicant model.Applicant, author model.User, comment model.Comment) (int, error)
}

// Auditor appends audit entries.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry) error
}

// CreateInput is the body of a new comment.
type CreateInput struct {
	Content   string `json:"content" validate:"required,max=5000"`
	IsPrivate bool   `json:"isPrivate"`
}

// Service runs comment operations.
type Service struct {
	comments   Store
	applicants Applicants
	notifier   Notifier
	auditor    Auditor
	log        logrus.FieldLogger
}

// NewService wires a Service. notifier and auditor may be nil.
func NewService(comments Store, applicants Applicants, notifier Notifier, auditor Auditor, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{comments: comments, applicants: applicants, notifier: notifier, auditor: auditor, log: log}
}

// Create attaches a note by actor to an applicant and tells the team.
func (s *Service) Create(ctx context.Context, actor model.User, applicantID uuid.UUID, in CreateInput) (*model.CommentView, error) {
	applicant, err := s.applicants.FindApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	in.Content = strings.TrimSpace(in.Content)
	if err := utilities.ValidatePayload(in); err != nil {
		return nil, err
	}

	c := &model.Comment{
		ApplicantID: applicant.ID,
		AuthorID:    actor.ID,
		Content:     in.Content,
		IsPrivate:   in.IsPrivate,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"applicant_id": applicant.ID,
		"comment_id":   c.ID,
		"author_id":    actor.ID,
	})

	if s.notifier != nil {
		_ = apperr.Contain(log, "notification", func() error {
			_, err := s.notifier.CommentAdded(ctx, *applicant, actor, *c)
			return err
		})
	}
	s.record(ctx, log, audit.Entry{
		Actor:        actor,
		Action:       audit.ActionCommentCreated,
		ResourceType: "comment",
		ResourceID:   c.ID,
		Description:  fmt.Sprintf("%s added a note on %s", actor.DisplayName(), applicant.FullName),
		Metadata:     map[string]any{"applicantId": applicant.ID, "isPrivate": c.IsPrivate},
	})

	c.Author = &actor
	v := c.View()
	return &v, nil
}

// List returns the notes on an applicant visible to actor, oldest first.
// Notes whose author was deleted are dropped. Private notes are shown to their author only.
func (s *Service) List(ctx context.Context, actor model.User, applicantID uuid.UUID) ([]model.CommentView, error) {
	if _, err := s.applicants.FindApplicant(ctx, applicantID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	comments = integrity.FilterValid(comments, s.log, "comment")

	views := make([]model.CommentView, 0, len(comments))
	for _, c := range comments {
		if c.IsPrivate && c.AuthorID != actor.ID {
			continue
		}
		views = append(views, c.View())
	}
	return views, nil
}

// Delete removes a note. Only its author may delete it.
func (s *Service) Delete(ctx context.Context, actor model.User, id uuid.UUID) error {
	c, err := s.comments.Find(ctx, id)
	if err != nil {
		return err
	}
	if c.AuthorID != actor.ID {
		return apperr.NewAuthorization("Only the author can delete this note")
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, s.log.WithField("comment_id", id), audit.Entry{
		Actor:        actor,
		Action:       audit.ActionCommentDeleted,
		ResourceType: "comment",
		ResourceID:   id,
		Description:  fmt.Sprintf("%s deleted a note", actor.DisplayName()),
		Metadata:     map[string]any{"applicantId": c.ApplicantID},
		Severity:     model.SeverityWarning,
	})
	return nil
}

func (s *Service) record(ctx context.Context, log logrus.FieldLogger, e audit.Entry) {
	if s.auditor == nil {
		return
	}
	_ = apperr.Contain(log, "audit", func() error {
		return s.auditor.Record(ctx, e)
	})
}
