package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-workflow/internal/domain"
	"article-workflow/internal/repository"
)

func newArticle(state domain.State) *domain.Article {
	now := time.Now().UTC()
	return &domain.Article{
		ID:                 uuid.New().String(),
		Title:              "Economy 2025",
		Body:               "Outlook for the coming year",
		AuthorID:           "author-1",
		State:              state,
		ApprovalPercentage: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func newVote(articleID string, cycle int, roleID string, at time.Time) *domain.Vote {
	return &domain.Vote{
		ID:            uuid.New().String(),
		ArticleID:     articleID,
		ReviewCycle:   cycle,
		VoterID:       "voter-" + roleID,
		VoterUsername: "user-" + roleID,
		RoleID:        roleID,
		RoleName:      "Role " + roleID,
		RoleWeight:    decimal.NewFromInt(30),
		Decision:      domain.DecisionApproved,
		VotedAt:       at,
	}
}

func TestMemoryStore_Articles(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	t.Run("get missing article returns nil", func(t *testing.T) {
		a, err := store.Articles().Get(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("create, update and delete", func(t *testing.T) {
		a := newArticle(domain.StateDraft)
		require.NoError(t, store.Articles().Create(ctx, a))

		got, err := store.Articles().Get(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, a.Title, got.Title)

		got.Title = "Economy 2026"
		require.NoError(t, store.Articles().Update(ctx, got))

		again, err := store.Articles().Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Economy 2026", again.Title)

		require.NoError(t, store.Articles().Delete(ctx, a.ID))
		gone, err := store.Articles().Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		assert.ErrorIs(t, store.Articles().Delete(ctx, a.ID), domain.ErrArticleNotFound)
	})

	t.Run("list filters by state and author", func(t *testing.T) {
		s := repository.NewMemoryStore()
		draft := newArticle(domain.StateDraft)
		review := newArticle(domain.StateInReview)
		other := newArticle(domain.StateInReview)
		other.AuthorID = "author-2"
		for _, a := range []*domain.Article{draft, review, other} {
			require.NoError(t, s.Articles().Create(ctx, a))
		}

		pending, err := s.Articles().List(ctx, domain.ArticleFilter{State: domain.StateInReview})
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		mine, err := s.Articles().List(ctx, domain.ArticleFilter{AuthorID: "author-1"})
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		page, err := s.Articles().List(ctx, domain.ArticleFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, page, 1)

		empty, err := s.Articles().List(ctx, domain.ArticleFilter{Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestMemoryStore_Votes(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	a := newArticle(domain.StateInReview)
	require.NoError(t, store.Articles().Create(ctx, a))

	base := time.Now().UTC()
	require.NoError(t, store.Votes().Save(ctx, newVote(a.ID, 1, "editor", base)))
	require.NoError(t, store.Votes().Save(ctx, newVote(a.ID, 1, "chief", base.Add(time.Second))))

	t.Run("find vote", func(t *testing.T) {
		v, err := store.Votes().FindVote(ctx, a.ID, 1, "editor")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "editor", v.RoleID)

		none, err := store.Votes().FindVote(ctx, a.ID, 2, "editor")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("duplicate in same cycle is rejected", func(t *testing.T) {
		err := store.Votes().Save(ctx, newVote(a.ID, 1, "editor", base))
		var dup *domain.DuplicateVoteError
		require.ErrorAs(t, err, &dup)
		assert.True(t, errors.Is(err, domain.ErrDuplicateVote))
	})

	t.Run("same role may vote in a new cycle", func(t *testing.T) {
		require.NoError(t, store.Votes().Save(ctx, newVote(a.ID, 2, "editor", base.Add(2*time.Second))))
	})

	t.Run("list ordering", func(t *testing.T) {
		newest, err := store.Votes().ListByArticle(ctx, a.ID, true)
		require.NoError(t, err)
		require.Len(t, newest, 3)
		assert.Equal(t, 2, newest[0].ReviewCycle)
		assert.Equal(t, "editor", newest[2].RoleID)

		oldest, err := store.Votes().ListByArticle(ctx, a.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "editor", oldest[0].RoleID)
		assert.Equal(t, 1, oldest[0].ReviewCycle)
	})

	t.Run("count by decision", func(t *testing.T) {
		n, err := store.Votes().CountByDecision(ctx, a.ID, 1, domain.DecisionApproved)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = store.Votes().CountByDecision(ctx, a.ID, 1, domain.DecisionRejected)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("deleting the article drops its votes", func(t *testing.T) {
		require.NoError(t, store.Articles().Delete(ctx, a.ID))
		votes, err := store.Votes().ListByArticle(ctx, a.ID, true)
		require.NoError(t, err)
		assert.Empty(t, votes)
	})
}

func TestMemoryStore_InArticleTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits staged writes", func(t *testing.T) {
		store := repository.NewMemoryStore()
		a := newArticle(domain.StateInReview)
		require.NoError(t, store.Articles().Create(ctx, a))

		err := store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
			require.NoError(t, tx.Votes().Save(ctx, newVote(a.ID, 0, "editor", time.Now())))
			got, err := tx.Articles().Get(ctx, a.ID)
			require.NoError(t, err)
			got.ApprovalPercentage = decimal.NewFromInt(30)
			return tx.Articles().Update(ctx, got)
		})
		require.NoError(t, err)

		got, err := store.Articles().Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "30.00", got.ApprovalPercentage.StringFixed(2))

		v, err := store.Votes().FindVote(ctx, a.ID, 0, "editor")
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("discards writes when fn fails", func(t *testing.T) {
		store := repository.NewMemoryStore()
		a := newArticle(domain.StateInReview)
		require.NoError(t, store.Articles().Create(ctx, a))

		boom := errors.New("boom")
		err := store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
			require.NoError(t, tx.Votes().Save(ctx, newVote(a.ID, 0, "editor", time.Now())))
			return boom
		})
		require.ErrorIs(t, err, boom)

		v, err := store.Votes().FindVote(ctx, a.ID, 0, "editor")
		require.NoError(t, err)
		assert.Nil(t, v, "vote must not be visible after a failed transaction")
	})

	t.Run("staged vote is visible inside the transaction", func(t *testing.T) {
		store := repository.NewMemoryStore()
		a := newArticle(domain.StateInReview)
		require.NoError(t, store.Articles().Create(ctx, a))

		err := store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
			require.NoError(t, tx.Votes().Save(ctx, newVote(a.ID, 0, "editor", time.Now())))
			return tx.Votes().Save(ctx, newVote(a.ID, 0, "editor", time.Now()))
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateVote)
	})

	t.Run("counts committed and staged votes", func(t *testing.T) {
		store := repository.NewMemoryStore()
		a := newArticle(domain.StateInReview)
		require.NoError(t, store.Articles().Create(ctx, a))
		require.NoError(t, store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
			return tx.Votes().Save(ctx, newVote(a.ID, 1, "editor", time.Now()))
		}))

		err := store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
			rejected := newVote(a.ID, 1, "reviewer", time.Now())
			rejected.Decision = domain.DecisionRejected
			require.NoError(t, tx.Votes().Save(ctx, rejected))
			require.NoError(t, tx.Votes().Save(ctx, newVote(a.ID, 2, "editor", time.Now())))

			n, err := tx.Votes().CountByDecision(ctx, a.ID, 1, domain.DecisionApproved)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			n, err = tx.Votes().CountByDecision(ctx, a.ID, 1, domain.DecisionRejected)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("serializes read-modify-write per article", func(t *testing.T) {
		store := repository.NewMemoryStore()
		a := newArticle(domain.StateInReview)
		require.NoError(t, store.Articles().Create(ctx, a))

		const workers = 50
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = store.InArticleTx(ctx, a.ID, func(ctx context.Context, tx repository.Tx) error {
					got, err := tx.Articles().Get(ctx, a.ID)
					if err != nil {
						return err
					}
					got.ApprovalPercentage = got.ApprovalPercentage.Add(decimal.NewFromInt(1))
					return tx.Articles().Update(ctx, got)
				})
			}()
		}
		wg.Wait()

		got, err := store.Articles().Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "50.00", got.ApprovalPercentage.StringFixed(2))
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		store := repository.NewMemoryStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := store.InArticleTx(cctx, uuid.New().String(), func(context.Context, repository.Tx) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
