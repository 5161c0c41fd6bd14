package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"article-workflow/internal/domain"
)

// Postgres error codes that mean "lost a race, try again".
var conflictCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool     *pgxpool.Pool
	articles *PostgresArticleRepository
	votes    *PostgresVoteLedger
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:     pool,
		articles: NewPostgresArticleRepository(pool),
		votes:    NewPostgresVoteLedger(pool),
	}
}

func (s *PostgresStore) Articles() ArticleRepository { return s.articles }

func (s *PostgresStore) Votes() VoteLedger { return s.votes }

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

type pgTx struct {
	articles *PostgresArticleRepository
	votes    *PostgresVoteLedger
}

func (t *pgTx) Articles() ArticleRepository { return t.articles }

func (t *pgTx) Votes() VoteLedger { return t.votes }

// InArticleTx runs fn in a transaction holding a row lock on the article.
// Concurrent calls for the same article queue on the lock; a missing article
// is left for fn to report.
func (s *PostgresStore) InArticleTx(ctx context.Context, articleID string, fn func(ctx context.Context, tx Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classifyError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked string
	err = tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR UPDATE`, articleID).Scan(&locked)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lock article: %w", classifyError(err))
	}

	if err := fn(ctx, &pgTx{
		articles: &PostgresArticleRepository{db: tx},
		votes:    &PostgresVoteLedger{db: tx},
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", classifyError(err))
	}
	return nil
}

// classifyError tags retryable postgres failures with ErrPersistenceConflict.
func classifyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && conflictCodes[pgErr.Code] {
		return fmt.Errorf("%w: %s", domain.ErrPersistenceConflict, pgErr.Message)
	}
	return err
}
