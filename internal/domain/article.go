package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the name of an article workflow state.
type State string

const (
	StateDraft     State = "Draft"
	StateInReview  State = "InReview"
	StatePublished State = "Published"
	StateObserved  State = "Observed"
)

// ValidStates contains all workflow states in lifecycle order.
var ValidStates = []State{StateDraft, StateInReview, StatePublished, StateObserved}

// ApprovalThreshold is the cumulative percentage at which an article is published.
var ApprovalThreshold = decimal.NewFromInt(100)

// Article represents an article entity in the system.
type Article struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Body               string          `json:"body"`
	AuthorID           string          `json:"author_id"`
	State              State           `json:"state"`
	ApprovalPercentage decimal.Decimal `json:"approval_percentage"`
	ReviewCycle        int             `json:"review_cycle"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ArticleInput holds the author-editable fields of an article.
type ArticleInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ArticleFilter narrows article listings. Zero values mean "any".
type ArticleFilter struct {
	State    State
	AuthorID string
	Limit    uint64
	Offset   uint64
}

// IsValidState checks if a state name is one of the workflow states.
func IsValidState(state string) bool {
	for _, s := range ValidStates {
		if string(s) == state {
			return true
		}
	}
	return false
}

// ParseState converts a raw state name into a State.
func ParseState(raw string) (State, error) {
	if !IsValidState(raw) {
		return "", &UnknownStateError{Name: raw}
	}
	return State(raw), nil
}

// RoundPercentage normalises a percentage to two decimal places.
func RoundPercentage(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}
