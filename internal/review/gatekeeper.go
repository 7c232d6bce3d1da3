package review

import "github.com/RazanRezq/jadara-sub002/internal/model"

// Gatekeeper reasons
const (
	ReasonAdvanced         = "advanced"
	ReasonReviewUpdate     = "review-update"
	ReasonDowngradeBlocked = "downgrade-blocked"
	ReasonNoEdge           = "no-edge"
	ReasonOversightRole    = "oversight-role"
	ReasonUnknownRole      = "unknown-role"
)

// Verdict is the outcome of NextStatus.
type Verdict struct {
	Next    model.ApplicantStatus
	Changed bool
	Reason  string
}

// NextStatus decides the applicant status after a review submission.
//
// Only a reviewer's first review moves an applicant, and only from new to
// evaluated. Admin and superadmin reviews are annotations and never move
// status. An unrecognized role never moves status. Applying the rule to an
// already evaluated applicant is a no-op, so duplicate firing is harmless.
func NextStatus(role model.Role, current model.ApplicantStatus, isNewReview bool) Verdict {
	unchanged := func(reason string) Verdict {
		return Verdict{Next: current, Reason: reason}
	}

	if !isNewReview {
		return unchanged(ReasonReviewUpdate)
	}

	switch role {
	case model.RoleReviewer:
		switch {
		case current == model.ApplicantStatusNew:
			return Verdict{Next: model.ApplicantStatusEvaluated, Changed: true, Reason: ReasonAdvanced}
		case current.IsAdvanced():
			return unchanged(ReasonDowngradeBlocked)
		default:
			return unchanged(ReasonNoEdge)
		}
	case model.RoleAdmin, model.RoleSuperadmin:
		return unchanged(ReasonOversightRole)
	default:
		return unchanged(ReasonUnknownRole)
	}
}
