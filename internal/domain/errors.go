package domain

import (
	"errors"
	"fmt"
)

// Error kinds reported by the workflow. Typed errors below match these via errors.Is.
var (
	ErrArticleNotFound     = errors.New("article not found")
	ErrDuplicateVote       = errors.New("duplicate vote")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrUnknownState        = errors.New("unknown state")
	ErrPersistenceConflict = errors.New("persistence conflict")
	ErrObserverFailure     = errors.New("observer failure")
	ErrNotAuthor           = errors.New("only the author may modify this article")
	ErrUnknownRole         = errors.New("unknown role")
)

// Action names used in TransitionError.
const (
	ActionApprove      = "approve"
	ActionReject       = "reject"
	ActionEdit         = "edit"
	ActionDelete       = "delete"
	ActionSendToReview = "send to review"
)

// TransitionError reports an action the article's current state does not accept.
type TransitionError struct {
	State  State
	Action string
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s an article in state %s", e.Action, e.State)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// DuplicateVoteError reports that a role has already voted in the current review cycle.
type DuplicateVoteError struct {
	ArticleID string
	RoleName  string
	State     State
}

func (e *DuplicateVoteError) Error() string {
	if e.RoleName == "" {
		return fmt.Sprintf("role has already reviewed article %s", e.ArticleID)
	}
	return fmt.Sprintf("%s has already reviewed this article", e.RoleName)
}

func (e *DuplicateVoteError) Is(target error) bool { return target == ErrDuplicateVote }

// UnknownStateError reports a state name outside the workflow's fixed set.
type UnknownStateError struct {
	Name string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q: valid states are Draft, InReview, Published, Observed", e.Name)
}

func (e *UnknownStateError) Is(target error) bool { return target == ErrUnknownState }

// ObserverError wraps a failure raised by a state-change subscriber.
type ObserverError struct {
	Observer string
	Err      error
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("observer %s: %v", e.Observer, e.Err)
}

func (e *ObserverError) Unwrap() error { return e.Err }

func (e *ObserverError) Is(target error) bool { return target == ErrObserverFailure }

// ErrorKind returns the taxonomy name of a workflow error, or "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return "ArticleNotFound"
	case errors.Is(err, ErrDuplicateVote):
		return "DuplicateVote"
	case errors.Is(err, ErrInvalidTransition):
		return "InvalidTransition"
	case errors.Is(err, ErrUnknownState):
		return "UnknownState"
	case errors.Is(err, ErrPersistenceConflict):
		return "PersistenceConflict"
	case errors.Is(err, ErrObserverFailure):
		return "ObserverFailure"
	case errors.Is(err, ErrNotAuthor):
		return "NotAuthor"
	case errors.Is(err, ErrUnknownRole):
		return "UnknownRole"
	default:
		return "internal"
	}
}
