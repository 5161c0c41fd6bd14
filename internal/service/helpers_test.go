package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"article-workflow/internal/domain"
	"article-workflow/internal/repository"
)

const authorID = "author-1"

var (
	editor      = domain.Role{ID: "editor", Name: "Editor", Weight: decimal.NewFromInt(30)}
	reviewer    = domain.Role{ID: "reviewer", Name: "Reviewer", Weight: decimal.NewFromInt(30)}
	chiefEditor = domain.Role{ID: "chief-editor", Name: "ChiefEditor", Weight: decimal.NewFromInt(70)}
)

func seedArticle(t *testing.T, store repository.Store, state domain.State, pct string, cycle int) *domain.Article {
	t.Helper()
	now := time.Now().UTC()
	a := &domain.Article{
		ID:                 uuid.New().String(),
		Title:              "Economy 2025",
		Body:               "Outlook for the coming year",
		AuthorID:           authorID,
		State:              state,
		ApprovalPercentage: decimal.RequireFromString(pct),
		ReviewCycle:        cycle,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, store.Articles().Create(context.Background(), a))
	return a
}

func voteRequest(articleID string, role domain.Role, decision domain.Decision) domain.VoteRequest {
	return domain.VoteRequest{
		ArticleID:     articleID,
		VoterID:       "voter-" + role.ID,
		VoterUsername: "user." + role.ID,
		RoleID:        role.ID,
		RoleName:      role.Name,
		RoleWeight:    role.Weight,
		Decision:      decision,
	}
}

func mustGet(t *testing.T, store repository.Store, id string) *domain.Article {
	t.Helper()
	a, err := store.Articles().Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

// flakyStore fails the first `failures` critical sections with err.
type flakyStore struct {
	*repository.MemoryStore
	failures int32
	err      error
	calls    atomic.Int32
}

func (s *flakyStore) InArticleTx(ctx context.Context, articleID string, fn func(ctx context.Context, tx repository.Tx) error) error {
	n := s.calls.Add(1)
	if s.failures < 0 || n <= s.failures {
		return s.err
	}
	return s.MemoryStore.InArticleTx(ctx, articleID, fn)
}
