package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"article-workflow/internal/domain"
)

const voteUniqueConstraint = "uq_article_votes_article_cycle_role"

const voteColumns = `id, article_id, review_cycle, voter_id, voter_username, role_id, role_name,
	role_weight::text, decision, comment, voted_at`

// PostgresVoteLedger implements VoteLedger using PostgreSQL.
type PostgresVoteLedger struct {
	db querier
}

// NewPostgresVoteLedger creates a new PostgresVoteLedger.
func NewPostgresVoteLedger(pool *pgxpool.Pool) *PostgresVoteLedger {
	return &PostgresVoteLedger{db: pool}
}

// FindVote looks up the vote a role cast on an article during a review cycle.
func (r *PostgresVoteLedger) FindVote(ctx context.Context, articleID string, cycle int, roleID string) (*domain.Vote, error) {
	v, err := scanVote(r.db.QueryRow(ctx, `
		SELECT `+voteColumns+`
		FROM article_votes
		WHERE article_id = $1 AND review_cycle = $2 AND role_id = $3
	`, articleID, cycle, roleID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find vote: %w", classifyError(err))
	}
	return &v, nil
}

// Save inserts a vote. The unique constraint on (article, cycle, role) is the
// final authority on duplicates.
func (r *PostgresVoteLedger) Save(ctx context.Context, v *domain.Vote) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO article_votes (id, article_id, review_cycle, voter_id, voter_username,
			role_id, role_name, role_weight, decision, comment, voted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11)
	`, v.ID, v.ArticleID, v.ReviewCycle, v.VoterID, v.VoterUsername,
		v.RoleID, v.RoleName, v.RoleWeight.StringFixed(2), string(v.Decision), v.Comment, v.VotedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == voteUniqueConstraint {
			return &domain.DuplicateVoteError{ArticleID: v.ArticleID, RoleName: v.RoleName}
		}
		return fmt.Errorf("insert vote: %w", classifyError(err))
	}

	return nil
}

// ListByArticle returns every vote on an article across all review cycles.
func (r *PostgresVoteLedger) ListByArticle(ctx context.Context, articleID string, newestFirst bool) ([]domain.Vote, error) {
	order := "voted_at ASC, id ASC"
	if newestFirst {
		order = "voted_at DESC, id DESC"
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+voteColumns+`
		FROM article_votes
		WHERE article_id = $1
		ORDER BY `+order, articleID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := make([]domain.Vote, 0)
	for rows.Next() {
		v, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// CountByDecision counts votes with the given decision in a review cycle.
func (r *PostgresVoteLedger) CountByDecision(ctx context.Context, articleID string, cycle int, decision domain.Decision) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM article_votes
		WHERE article_id = $1 AND review_cycle = $2 AND decision = $3
	`, articleID, cycle, string(decision)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count votes: %w", classifyError(err))
	}
	return count, nil
}

func scanVote(row rowScanner) (domain.Vote, error) {
	var v domain.Vote
	var weight, decision string

	if err := row.Scan(&v.ID, &v.ArticleID, &v.ReviewCycle, &v.VoterID, &v.VoterUsername,
		&v.RoleID, &v.RoleName, &weight, &decision, &v.Comment, &v.VotedAt); err != nil {
		return domain.Vote{}, err
	}

	w, err := decimal.NewFromString(weight)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("parse role weight %q: %w", weight, err)
	}
	v.RoleWeight = w
	v.Decision = domain.Decision(decision)

	return v, nil
}
