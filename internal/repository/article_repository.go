package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"article-workflow/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var articleColumns = []string{
	"id", "title", "body", "author_id", "state",
	"approval_percentage::text", "review_cycle", "created_at", "updated_at",
}

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	db querier
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{db: pool}
}

// Create inserts a new article.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO articles (id, title, body, author_id, state, approval_percentage,
			review_cycle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)
	`, a.ID, a.Title, a.Body, a.AuthorID, string(a.State), a.ApprovalPercentage.StringFixed(2),
		a.ReviewCycle, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", classifyError(err))
	}
	return nil
}

// Get retrieves an article by ID.
func (r *PostgresArticleRepository) Get(ctx context.Context, id string) (*domain.Article, error) {
	query, args, err := psql.Select(articleColumns...).From("articles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get article query: %w", err)
	}

	a, err := scanArticle(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", classifyError(err))
	}
	return &a, nil
}

// Update writes back the mutable fields of an article.
func (r *PostgresArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE articles
		SET title = $2, body = $3, state = $4, approval_percentage = $5::numeric,
			review_cycle = $6, updated_at = $7
		WHERE id = $1
	`, a.ID, a.Title, a.Body, string(a.State), a.ApprovalPercentage.StringFixed(2),
		a.ReviewCycle, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update article: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// Delete removes an article and, by cascade, its votes.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// List returns articles matching the filter, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	q := psql.Select(articleColumns...).From("articles").OrderBy("created_at DESC", "id")
	if f.State != "" {
		q = q.Where(sq.Eq{"state": string(f.State)})
	}
	if f.AuthorID != "" {
		q = q.Where(sq.Eq{"author_id": f.AuthorID})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var a domain.Article
	var state, pct string

	if err := row.Scan(&a.ID, &a.Title, &a.Body, &a.AuthorID, &state, &pct,
		&a.ReviewCycle, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Article{}, err
	}

	s, err := domain.ParseState(state)
	if err != nil {
		return domain.Article{}, err
	}
	a.State = s

	a.ApprovalPercentage, err = decimal.NewFromString(pct)
	if err != nil {
		return domain.Article{}, fmt.Errorf("parse approval percentage %q: %w", pct, err)
	}

	return a, nil
}
