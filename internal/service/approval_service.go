package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"article-workflow/internal/domain"
	"article-workflow/internal/logger"
	"article-workflow/internal/metrics"
	"article-workflow/internal/repository"
	"article-workflow/internal/state"
	"article-workflow/internal/validator"
)

const (
	// DefaultVoteMaxAttempts bounds retries after a persistence conflict
	DefaultVoteMaxAttempts = 3
	// DefaultVoteRetryBackoff is multiplied by the attempt number between retries
	DefaultVoteRetryBackoff = 25 * time.Millisecond
)

// ApprovalService applies reviewer votes to articles.
type ApprovalService struct {
	store     repository.Store
	notifier  StateNotifier
	validator *validator.Validator

	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

// NewApprovalService creates a new ApprovalService. Non-positive retry
// settings fall back to the defaults.
func NewApprovalService(
	store repository.Store,
	notifier StateNotifier,
	v *validator.Validator,
	maxAttempts int,
	retryBackoff time.Duration,
) *ApprovalService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultVoteMaxAttempts
	}
	if retryBackoff < 0 {
		retryBackoff = DefaultVoteRetryBackoff
	}
	return &ApprovalService{
		store:       store,
		notifier:    notifier,
		validator:   v,
		maxAttempts: maxAttempts,
		backoff:     retryBackoff,
		now:         time.Now,
	}
}

// stateChange is what gets announced once a vote has been committed.
type stateChange struct {
	article  domain.Article
	oldState domain.State
	message  string
}

// SubmitVote runs one vote through the article's current state policy.
// The read-decide-write sequence is serialized per article and retried only
// on persistence conflicts. Observers are notified after commit; their
// failures are logged and never fail the vote.
func (s *ApprovalService) SubmitVote(ctx context.Context, req domain.VoteRequest) (*domain.VoteOutcome, error) {
	timer := metrics.NewTimer()
	log := logger.WithArticleID(req.ArticleID)

	if err := s.validator.ValidateVoteRequest(&req); err != nil {
		metrics.ObserveVote(req.RoleName, string(req.Decision), metrics.VoteResultError, timer.Seconds())
		return nil, err
	}

	var (
		outcome *domain.VoteOutcome
		change  *stateChange
		attempt int
	)
	operation := func() error {
		attempt++
		var opErr error
		outcome, change, opErr = s.applyVote(ctx, req)
		if opErr != nil && !errors.Is(opErr, domain.ErrPersistenceConflict) {
			return backoff.Permanent(opErr)
		}
		return opErr
	}
	notify := func(opErr error, wait time.Duration) {
		metrics.ObserveConflictRetry()
		log.WarnContext(ctx, "Vote hit a persistence conflict, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.String("role", req.RoleName),
			slog.String("error", opErr.Error()),
		)
	}

	err := backoff.RetryNotify(operation, s.retryPolicy(ctx), notify)

	if err != nil {
		metrics.ObserveVote(req.RoleName, string(req.Decision), voteResult(err), timer.Seconds())
		log.InfoContext(ctx, "Vote refused",
			slog.String("role", req.RoleName),
			slog.String("decision", string(req.Decision)),
			slog.String("kind", domain.ErrorKind(err)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	metrics.ObserveVote(req.RoleName, string(req.Decision), metrics.VoteResultAccepted, timer.Seconds())
	log.InfoContext(ctx, "Vote recorded",
		slog.String("role", req.RoleName),
		slog.String("decision", string(req.Decision)),
		slog.String("old_state", string(change.oldState)),
		slog.String("new_state", string(outcome.State)),
		slog.String("percentage", outcome.Percentage.StringFixed(2)),
	)

	s.notify(ctx, change)

	return outcome, nil
}

// retryPolicy allows maxAttempts attempts in total, waiting backoff*n before
// the n-th retry, and stops early once ctx is done.
func (s *ApprovalService) retryPolicy(ctx context.Context) backoff.BackOff {
	return backoff.WithContext(
		backoff.WithMaxRetries(&linearBackOff{step: s.backoff}, uint64(s.maxAttempts-1)),
		ctx,
	)
}

// linearBackOff waits step, 2*step, 3*step, ...
type linearBackOff struct {
	step time.Duration
	n    int64
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.n++
	return b.step * time.Duration(b.n)
}

func (b *linearBackOff) Reset() { b.n = 0 }

func (s *ApprovalService) applyVote(ctx context.Context, req domain.VoteRequest) (*domain.VoteOutcome, *stateChange, error) {
	var (
		outcome *domain.VoteOutcome
		change  *stateChange
	)

	err := s.store.InArticleTx(ctx, req.ArticleID, func(ctx context.Context, tx repository.Tx) error {
		article, err := tx.Articles().Get(ctx, req.ArticleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if article == nil {
			return domain.ErrArticleNotFound
		}

		existing, err := tx.Votes().FindVote(ctx, article.ID, article.ReviewCycle, req.RoleID)
		if err != nil {
			return fmt.Errorf("find vote: %w", err)
		}
		if existing != nil {
			return &domain.DuplicateVoteError{ArticleID: article.ID, RoleName: req.RoleName, State: article.State}
		}

		policy, err := state.Resolve(article.State)
		if err != nil {
			return err
		}

		var tr state.Transition
		switch req.Decision {
		case domain.DecisionApproved:
			tr, err = policy.OnApprove(*article, req.RoleWeight)
		case domain.DecisionRejected:
			tr, err = policy.OnReject(*article)
		default:
			err = fmt.Errorf("unsupported decision %q", req.Decision)
		}
		if err != nil {
			return err
		}

		now := s.now().UTC()
		vote := &domain.Vote{
			ID:            uuid.New().String(),
			ArticleID:     article.ID,
			ReviewCycle:   article.ReviewCycle,
			VoterID:       req.VoterID,
			VoterUsername: req.VoterUsername,
			RoleID:        req.RoleID,
			RoleName:      req.RoleName,
			RoleWeight:    domain.RoundPercentage(req.RoleWeight),
			Decision:      req.Decision,
			Comment:       req.Comment,
			VotedAt:       now,
		}
		if err := tx.Votes().Save(ctx, vote); err != nil {
			var dup *domain.DuplicateVoteError
			if errors.As(err, &dup) {
				dup.State = article.State
			}
			return err
		}

		oldState := article.State
		article.State = tr.State
		article.ApprovalPercentage = tr.Percentage
		article.UpdatedAt = now
		if err := tx.Articles().Update(ctx, article); err != nil {
			return fmt.Errorf("update article: %w", err)
		}

		outcome = &domain.VoteOutcome{
			ArticleID:     article.ID,
			ArticleTitle:  article.Title,
			VoterUsername: req.VoterUsername,
			RoleName:      req.RoleName,
			RoleWeight:    vote.RoleWeight,
			Decision:      req.Decision,
			Percentage:    article.ApprovalPercentage,
			State:         article.State,
			Message:       tr.Message,
		}
		change = &stateChange{article: *article, oldState: oldState, message: tr.Message}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return outcome, change, nil
}

func (s *ApprovalService) notify(ctx context.Context, change *stateChange) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, change.article, change.oldState, change.article.State, change.message); err != nil {
		logger.WithArticleID(change.article.ID).WarnContext(ctx, "State change delivered with observer failures",
			slog.String("error", err.Error()),
		)
	}
}

// History returns the full vote history of an article, newest first, each
// entry paired with the article's current standing.
func (s *ApprovalService) History(ctx context.Context, articleID string) ([]domain.VoteRecord, error) {
	if !isUUID(articleID) {
		return nil, domain.ErrArticleNotFound
	}

	article, err := s.store.Articles().Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrArticleNotFound
	}

	votes, err := s.store.Votes().ListByArticle(ctx, articleID, true)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}

	records := make([]domain.VoteRecord, 0, len(votes))
	for _, v := range votes {
		records = append(records, domain.VoteRecord{
			Vote:         v,
			ArticleTitle: article.Title,
			Percentage:   article.ApprovalPercentage,
			State:        article.State,
		})
	}
	return records, nil
}

// Tally counts the current cycle's approvals and rejections.
func (s *ApprovalService) Tally(ctx context.Context, articleID string) (*domain.VoteTally, error) {
	if !isUUID(articleID) {
		return nil, domain.ErrArticleNotFound
	}

	article, err := s.store.Articles().Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrArticleNotFound
	}

	approvals, err := s.store.Votes().CountByDecision(ctx, articleID, article.ReviewCycle, domain.DecisionApproved)
	if err != nil {
		return nil, fmt.Errorf("count approvals: %w", err)
	}
	rejections, err := s.store.Votes().CountByDecision(ctx, articleID, article.ReviewCycle, domain.DecisionRejected)
	if err != nil {
		return nil, fmt.Errorf("count rejections: %w", err)
	}

	return &domain.VoteTally{
		ArticleID:   article.ID,
		ReviewCycle: article.ReviewCycle,
		Approvals:   approvals,
		Rejections:  rejections,
		Percentage:  article.ApprovalPercentage,
		State:       article.State,
	}, nil
}

func voteResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateVote):
		return metrics.VoteResultDuplicate
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrArticleNotFound):
		return metrics.VoteResultRejected
	default:
		return metrics.VoteResultError
	}
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
