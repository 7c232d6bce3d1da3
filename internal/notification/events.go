package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// ApplicantLink deep-links to tab of the applicant page.
func ApplicantLink(applicantID uuid.UUID, tab string) string {
	return fmt.Sprintf("/applicants/%s?tab=%s", applicantID, tab)
}

// ReviewSubmitted tells the team that reviewer rated applicant.
// job may be nil when the applicant is not attached to a job.
func (b *Broadcaster) ReviewSubmitted(ctx context.Context, applicant model.Applicant, job *model.Job, reviewer model.User, rating int) (int, error) {
	jobTitle := ""
	message := fmt.Sprintf("%s rated %s %d/5", reviewer.DisplayName(), applicant.FullName, rating)
	if job != nil {
		jobTitle = job.Title
		message += fmt.Sprintf(" for %s", job.Title)
	}

	return b.Broadcast(ctx, Event{
		Type:       model.NotificationReviewSubmitted,
		Priority:   model.PriorityNormal,
		ActorID:    reviewer.ID,
		Title:      "New review submitted",
		Message:    message,
		TitleKey:   "notifications.review_submitted.title",
		MessageKey: "notifications.review_submitted.message",
		Params: map[string]any{
			"reviewerName":  reviewer.DisplayName(),
			"applicantName": applicant.FullName,
			"jobTitle":      jobTitle,
			"rating":        rating,
		},
		ActionURL: ApplicantLink(applicant.ID, "reviews"),
		RelatedID: applicant.ID,
	})
}

// CommentAdded tells the team that author left a note on applicant.
// Private notes are announced without their content.
func (b *Broadcaster) CommentAdded(ctx context.Context, applicant model.Applicant, author model.User, comment model.Comment) (int, error) {
	params := map[string]any{
		"authorName":    author.DisplayName(),
		"applicantName": applicant.FullName,
		"isPrivate":     comment.IsPrivate,
	}
	if !comment.IsPrivate {
		params["preview"] = preview(comment.Content, 120)
	}

	return b.Broadcast(ctx, Event{
		Type:       model.NotificationCommentAdded,
		Priority:   model.PriorityLow,
		ActorID:    author.ID,
		Title:      "New team note",
		Message:    fmt.Sprintf("%s added a note on %s", author.DisplayName(), applicant.FullName),
		TitleKey:   "notifications.comment_added.title",
		MessageKey: "notifications.comment_added.message",
		Params:     params,
		ActionURL:  ApplicantLink(applicant.ID, "notes"),
		RelatedID:  applicant.ID,
	})
}

func preview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
