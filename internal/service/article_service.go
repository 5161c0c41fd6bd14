package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"article-workflow/internal/domain"
	"article-workflow/internal/logger"
	"article-workflow/internal/repository"
	"article-workflow/internal/state"
	"article-workflow/internal/validator"
)

const sentToReviewMessage = "The article was sent to review."

// ArticleService handles article authoring. State checks go through the same
// policies the approval engine uses.
type ArticleService struct {
	store     repository.Store
	notifier  StateNotifier
	validator *validator.Validator
	now       func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(store repository.Store, notifier StateNotifier, v *validator.Validator) *ArticleService {
	return &ArticleService{
		store:     store,
		notifier:  notifier,
		validator: v,
		now:       time.Now,
	}
}

// Create stores a new Draft article owned by authorID.
func (s *ArticleService) Create(ctx context.Context, authorID string, in domain.ArticleInput) (*domain.Article, error) {
	if err := s.validator.ValidateArticleInput(&in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	article := &domain.Article{
		ID:                 uuid.New().String(),
		Title:              strings.TrimSpace(in.Title),
		Body:               in.Body,
		AuthorID:           authorID,
		State:              domain.StateDraft,
		ApprovalPercentage: decimal.Zero,
		ReviewCycle:        0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.store.Articles().Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	logger.WithArticleID(article.ID).InfoContext(ctx, "Article created", slog.String("author_id", authorID))
	return article, nil
}

// Get returns an article or domain.ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	if !isUUID(id) {
		return nil, domain.ErrArticleNotFound
	}

	article, err := s.store.Articles().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

// ListPublished returns every published article.
func (s *ArticleService) ListPublished(ctx context.Context) ([]domain.Article, error) {
	return s.List(ctx, domain.ArticleFilter{State: domain.StatePublished})
}

// ListPending returns every article waiting for votes.
func (s *ArticleService) ListPending(ctx context.Context) ([]domain.Article, error) {
	return s.List(ctx, domain.ArticleFilter{State: domain.StateInReview})
}

// ListByAuthor returns an author's articles in any state.
func (s *ArticleService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	return s.List(ctx, domain.ArticleFilter{AuthorID: authorID})
}

// List returns articles matching the filter, newest first.
func (s *ArticleService) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	if filter.State != "" {
		if _, err := state.Resolve(filter.State); err != nil {
			return nil, err
		}
	}

	articles, err := s.store.Articles().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Update edits title and body. Editing an Observed article sends it back to
// Draft with its approval reset.
func (s *ArticleService) Update(ctx context.Context, id, actorID string, in domain.ArticleInput) (*domain.Article, error) {
	if err := s.validator.ValidateArticleInput(&in); err != nil {
		return nil, err
	}

	var updated *domain.Article
	err := s.withOwnedArticle(ctx, id, actorID, domain.ActionEdit, func(ctx context.Context, tx repository.Tx, article *domain.Article, policy state.Policy) error {
		if !policy.Editable() {
			return &domain.TransitionError{State: article.State, Action: domain.ActionEdit, Reason: lockedReason(article.State)}
		}

		article.Title = strings.TrimSpace(in.Title)
		article.Body = in.Body
		if article.State == domain.StateObserved {
			article.State = domain.StateDraft
			article.ApprovalPercentage = decimal.Zero
		}
		article.UpdatedAt = s.now().UTC()

		if err := tx.Articles().Update(ctx, article); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithArticleID(id).InfoContext(ctx, "Article updated", slog.String("state", string(updated.State)))
	return updated, nil
}

// Delete removes an article and its vote history.
func (s *ArticleService) Delete(ctx context.Context, id, actorID string) error {
	err := s.withOwnedArticle(ctx, id, actorID, domain.ActionDelete, func(ctx context.Context, tx repository.Tx, article *domain.Article, policy state.Policy) error {
		if !policy.Editable() {
			return &domain.TransitionError{State: article.State, Action: domain.ActionDelete, Reason: lockedReason(article.State)}
		}
		if err := tx.Articles().Delete(ctx, article.ID); err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithArticleID(id).InfoContext(ctx, "Article deleted")
	return nil
}

// SendToReview opens a new review cycle: state InReview, approval 0.00.
// Votes from earlier cycles stay in history but no longer count.
func (s *ArticleService) SendToReview(ctx context.Context, id, actorID string) (*domain.Article, error) {
	var (
		updated  *domain.Article
		oldState domain.State
	)
	err := s.withOwnedArticle(ctx, id, actorID, domain.ActionSendToReview, func(ctx context.Context, tx repository.Tx, article *domain.Article, policy state.Policy) error {
		if !policy.Resubmittable() {
			return &domain.TransitionError{
				State:  article.State,
				Action: domain.ActionSendToReview,
				Reason: "only Draft or Observed articles can be sent to review",
			}
		}

		oldState = article.State
		article.State = domain.StateInReview
		article.ApprovalPercentage = decimal.Zero
		article.ReviewCycle++
		article.UpdatedAt = s.now().UTC()

		if err := tx.Articles().Update(ctx, article); err != nil {
			return fmt.Errorf("update article: %w", err)
		}
		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.WithArticleID(id)
	log.InfoContext(ctx, "Article sent to review", slog.Int("review_cycle", updated.ReviewCycle))

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, *updated, oldState, updated.State, sentToReviewMessage); err != nil {
			log.WarnContext(ctx, "State change delivered with observer failures", slog.String("error", err.Error()))
		}
	}
	return updated, nil
}

type ownedArticleFunc func(ctx context.Context, tx repository.Tx, article *domain.Article, policy state.Policy) error

// withOwnedArticle loads the article inside its critical section, checks that
// actorID is the author and resolves the state policy before calling fn.
func (s *ArticleService) withOwnedArticle(ctx context.Context, id, actorID, action string, fn ownedArticleFunc) error {
	if !isUUID(id) {
		return domain.ErrArticleNotFound
	}

	return s.store.InArticleTx(ctx, id, func(ctx context.Context, tx repository.Tx) error {
		article, err := tx.Articles().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		if article == nil {
			return domain.ErrArticleNotFound
		}
		if article.AuthorID != actorID {
			return fmt.Errorf("%w: %s", domain.ErrNotAuthor, action)
		}

		policy, err := state.Resolve(article.State)
		if err != nil {
			return err
		}
		return fn(ctx, tx, article, policy)
	})
}

func lockedReason(s domain.State) string {
	switch s {
	case domain.StateInReview:
		return "the article is under review"
	case domain.StatePublished:
		return "published articles cannot be modified"
	default:
		return "the article is locked"
	}
}
