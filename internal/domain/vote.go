package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decision is a reviewer's verdict on an article.
type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// ValidDecisions contains all accepted vote decisions.
var ValidDecisions = []Decision{DecisionApproved, DecisionRejected}

// IsValidDecision checks if a decision is valid.
func IsValidDecision(decision string) bool {
	for _, d := range ValidDecisions {
		if string(d) == decision {
			return true
		}
	}
	return false
}

// Role is a reviewer role and the weight its approval contributes.
type Role struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Weight decimal.Decimal `json:"weight"`
}

// Vote is an immutable review verdict. The weight is captured at vote time.
type Vote struct {
	ID            string          `json:"id"`
	ArticleID     string          `json:"article_id"`
	ReviewCycle   int             `json:"review_cycle"`
	VoterID       string          `json:"voter_id"`
	VoterUsername string          `json:"voter_username"`
	RoleID        string          `json:"role_id"`
	RoleName      string          `json:"role_name"`
	RoleWeight    decimal.Decimal `json:"role_weight"`
	Decision      Decision        `json:"decision"`
	Comment       *string         `json:"comment,omitempty"`
	VotedAt       time.Time       `json:"voted_at"`
}

// VoteRequest is the input of a vote submission. Voter identity and role are
// trusted as verified upstream.
type VoteRequest struct {
	ArticleID     string          `json:"article_id"`
	VoterID       string          `json:"voter_id"`
	VoterUsername string          `json:"voter_username"`
	RoleID        string          `json:"role_id"`
	RoleName      string          `json:"role"`
	RoleWeight    decimal.Decimal `json:"role_weight"`
	Decision      Decision        `json:"decision"`
	Comment       *string         `json:"comment,omitempty"`
}

// VoteOutcome describes the result of an accepted vote.
type VoteOutcome struct {
	ArticleID     string          `json:"article_id"`
	ArticleTitle  string          `json:"article_title"`
	VoterUsername string          `json:"voter_username"`
	RoleName      string          `json:"role_name"`
	RoleWeight    decimal.Decimal `json:"role_weight"`
	Decision      Decision        `json:"decision"`
	Percentage    decimal.Decimal `json:"approval_percentage"`
	State         State           `json:"state"`
	Message       string          `json:"message"`
}

// VoteRecord is a history entry: a vote plus the article's current standing.
type VoteRecord struct {
	Vote         Vote            `json:"vote"`
	ArticleTitle string          `json:"article_title"`
	Percentage   decimal.Decimal `json:"approval_percentage"`
	State        State           `json:"state"`
}

// VoteTally counts the votes of an article's current review cycle.
type VoteTally struct {
	ArticleID   string          `json:"article_id"`
	ReviewCycle int             `json:"review_cycle"`
	Approvals   int             `json:"approvals"`
	Rejections  int             `json:"rejections"`
	Percentage  decimal.Decimal `json:"approval_percentage"`
	State       State           `json:"state"`
}
