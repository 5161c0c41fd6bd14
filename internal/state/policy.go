// Package state holds the per-state workflow rules for articles.
//
// Each of the four workflow states has exactly one Policy. Policies are pure:
// they take an article snapshot by value and return the computed Transition
// without touching storage.
package state

import (
	"fmt"

	"github.com/shopspring/decimal"

	"article-workflow/internal/domain"
)

// Transition is the outcome of a vote as computed by a Policy.
type Transition struct {
	State      domain.State
	Percentage decimal.Decimal
	Message    string
}

// Policy is the behaviour of a single workflow state.
type Policy interface {
	Name() domain.State
	// Editable reports whether the author may edit or delete the article.
	Editable() bool
	// Resubmittable reports whether the article may be sent to review.
	Resubmittable() bool
	OnApprove(article domain.Article, weight decimal.Decimal) (Transition, error)
	OnReject(article domain.Article) (Transition, error)
}

type draftPolicy struct{}

func (draftPolicy) Name() domain.State  { return domain.StateDraft }
func (draftPolicy) Editable() bool      { return true }
func (draftPolicy) Resubmittable() bool { return true }

func (draftPolicy) OnApprove(domain.Article, decimal.Decimal) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StateDraft,
		Action: domain.ActionApprove,
		Reason: "the article must be sent to review first",
	}
}

func (draftPolicy) OnReject(domain.Article) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StateDraft,
		Action: domain.ActionReject,
		Reason: "the article must be sent to review first",
	}
}

type inReviewPolicy struct{}

func (inReviewPolicy) Name() domain.State  { return domain.StateInReview }
func (inReviewPolicy) Editable() bool      { return false }
func (inReviewPolicy) Resubmittable() bool { return false }

// OnApprove adds the role weight to the running percentage. Reaching the
// threshold publishes; overshoot is kept as-is.
func (inReviewPolicy) OnApprove(article domain.Article, weight decimal.Decimal) (Transition, error) {
	pct := domain.RoundPercentage(article.ApprovalPercentage.Add(weight))

	if pct.GreaterThanOrEqual(domain.ApprovalThreshold) {
		return Transition{
			State:      domain.StatePublished,
			Percentage: pct,
			Message:    fmt.Sprintf("The article reached %s%% approval and has been PUBLISHED.", pct.StringFixed(2)),
		}, nil
	}

	return Transition{
		State:      domain.StateInReview,
		Percentage: pct,
		Message:    fmt.Sprintf("Current progress: %s%%. The article remains in review.", pct.StringFixed(2)),
	}, nil
}

func (inReviewPolicy) OnReject(article domain.Article) (Transition, error) {
	return Transition{
		State:      domain.StateObserved,
		Percentage: article.ApprovalPercentage,
		Message:    "The article was rejected and marked as Observed. The author must make the required corrections.",
	}, nil
}

type publishedPolicy struct{}

func (publishedPolicy) Name() domain.State  { return domain.StatePublished }
func (publishedPolicy) Editable() bool      { return false }
func (publishedPolicy) Resubmittable() bool { return false }

func (publishedPolicy) OnApprove(domain.Article, decimal.Decimal) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StatePublished,
		Action: domain.ActionApprove,
		Reason: "the article already reached full approval",
	}
}

func (publishedPolicy) OnReject(domain.Article) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StatePublished,
		Action: domain.ActionReject,
		Reason: "the article is already public",
	}
}

type observedPolicy struct{}

func (observedPolicy) Name() domain.State  { return domain.StateObserved }
func (observedPolicy) Editable() bool      { return true }
func (observedPolicy) Resubmittable() bool { return true }

func (observedPolicy) OnApprove(domain.Article, decimal.Decimal) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StateObserved,
		Action: domain.ActionApprove,
		Reason: "the author must edit and resubmit the article",
	}
}

func (observedPolicy) OnReject(domain.Article) (Transition, error) {
	return Transition{}, &domain.TransitionError{
		State:  domain.StateObserved,
		Action: domain.ActionReject,
		Reason: "the article is already rejected",
	}
}
