package validator

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"article-workflow/internal/domain"
)

const maxTitleLength = 255

var (
	validDecisions = []interface{}{domain.DecisionApproved, domain.DecisionRejected}
	maxRoleWeight  = decimal.NewFromInt(100)
)

// Validator provides validation methods for workflow inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates the author-editable fields of an article.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.By(notBlankRule("title_required", "title is required")),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.By(notBlankRule("body_required", "body is required")),
		),
	)
}

// ValidateVoteRequest validates a vote submission.
func (v *Validator) ValidateVoteRequest(req *domain.VoteRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ArticleID,
			validation.Required.Error("article_id_required"),
			is.UUID.Error("invalid_article_id"),
		),
		validation.Field(&req.VoterID,
			validation.Required.Error("voter_id_required"),
		),
		validation.Field(&req.RoleID,
			validation.Required.Error("role_id_required"),
		),
		validation.Field(&req.RoleName,
			validation.Required.Error("role_required"),
		),
		validation.Field(&req.RoleWeight,
			validation.By(weightRule),
		),
		validation.Field(&req.Decision,
			validation.Required.Error("decision_required"),
			validation.In(validDecisions...).Error("invalid_decision"),
		),
	)
}

// ValidateRole validates a role catalog entry.
func (v *Validator) ValidateRole(r *domain.Role) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID,
			validation.Required.Error("role_id_required"),
		),
		validation.Field(&r.Name,
			validation.By(notBlankRule("role_name_required", "role name is required")),
		),
		validation.Field(&r.Weight,
			validation.By(weightRule),
		),
	)
}

// notBlankRule rejects empty and whitespace-only strings.
func notBlankRule(code, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

// weightRule accepts weights within 0.00 to 100.00 with at most two
// decimal places, so running percentages are exact sums.
func weightRule(value interface{}) error {
	w, ok := value.(decimal.Decimal)
	if !ok {
		return nil
	}
	if w.IsNegative() || w.GreaterThan(maxRoleWeight) {
		return validation.NewError("weight_out_of_range", "weight must be between 0 and 100")
	}
	if !w.Equal(w.Round(2)) {
		return validation.NewError("weight_precision", "weight must have at most two decimal places")
	}
	return nil
}

// FieldErrors flattens ozzo validation errors into field -> reason.
// Returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		fields[field] = fieldErr.Error()
	}
	return fields
}
