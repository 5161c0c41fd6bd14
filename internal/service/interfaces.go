package service

import (
	"context"

	"article-workflow/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// StateNotifier receives committed article state changes.
type StateNotifier interface {
	Notify(ctx context.Context, article domain.Article, oldState, newState domain.State, message string) error
}

// ApprovalServiceInterface defines the interface for review operations.
// Used for dependency injection and mocking in tests.
type ApprovalServiceInterface interface {
	// SubmitVote records a role's verdict and advances the article's workflow.
	SubmitVote(ctx context.Context, req domain.VoteRequest) (*domain.VoteOutcome, error)
	// History returns every vote on an article, newest first.
	History(ctx context.Context, articleID string) ([]domain.VoteRecord, error)
	// Tally counts approvals and rejections in the current review cycle.
	Tally(ctx context.Context, articleID string) (*domain.VoteTally, error)
}

// ArticleServiceInterface defines the interface for article authoring operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	Create(ctx context.Context, authorID string, in domain.ArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	ListPublished(ctx context.Context) ([]domain.Article, error)
	ListPending(ctx context.Context) ([]domain.Article, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	// Update edits an article; only its author may do so while the state allows it.
	Update(ctx context.Context, id, actorID string, in domain.ArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id, actorID string) error
	// SendToReview starts a new review cycle.
	SendToReview(ctx context.Context, id, actorID string) (*domain.Article, error)
}

// ExportServiceInterface defines the interface for streaming exports.
// Used for dependency injection and mocking in tests.
type ExportServiceInterface interface {
	// StreamHistory streams an article's votes, oldest first, to the writer.
	StreamHistory(ctx context.Context, articleID, format string, writer StreamWriter) (int, error)
	// StreamArticles streams the articles matching filter to the writer.
	StreamArticles(ctx context.Context, filter domain.ArticleFilter, format string, writer StreamWriter) (int, error)
}
