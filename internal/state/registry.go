package state

import "article-workflow/internal/domain"

// registry is the fixed state table. Adding a state means adding a Policy
// implementation and a row here.
var registry = map[domain.State]Policy{
	domain.StateDraft:     draftPolicy{},
	domain.StateInReview:  inReviewPolicy{},
	domain.StatePublished: publishedPolicy{},
	domain.StateObserved:  observedPolicy{},
}

// Resolve returns the Policy for a state name.
func Resolve(name domain.State) (Policy, error) {
	p, ok := registry[name]
	if !ok {
		return nil, &domain.UnknownStateError{Name: string(name)}
	}
	return p, nil
}

// States returns the registered state names in lifecycle order.
func States() []domain.State {
	out := make([]domain.State, len(domain.ValidStates))
	copy(out, domain.ValidStates)
	return out
}
