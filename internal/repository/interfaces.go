package repository

import (
	"context"

	"article-workflow/internal/domain"
)

// ArticleRepository defines methods for article data access.
// Get returns nil, nil when the article does not exist.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Get(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
}

// VoteLedger records one vote per (article, review cycle, role).
type VoteLedger interface {
	// FindVote returns nil, nil when the role has not voted in the cycle.
	FindVote(ctx context.Context, articleID string, cycle int, roleID string) (*domain.Vote, error)
	// Save fails with *domain.DuplicateVoteError if the role already voted in the cycle.
	Save(ctx context.Context, vote *domain.Vote) error
	ListByArticle(ctx context.Context, articleID string, newestFirst bool) ([]domain.Vote, error)
	CountByDecision(ctx context.Context, articleID string, cycle int, decision domain.Decision) (int, error)
}

// Tx exposes repositories bound to one article critical section.
type Tx interface {
	Articles() ArticleRepository
	Votes() VoteLedger
}

// Store is the transactional persistence used by the workflow services.
type Store interface {
	Articles() ArticleRepository
	Votes() VoteLedger
	// InArticleTx serializes fn with every other InArticleTx call for the same
	// article. Writes made through tx become visible only if fn returns nil.
	InArticleTx(ctx context.Context, articleID string, fn func(ctx context.Context, tx Tx) error) error
	Ping(ctx context.Context) error
}
