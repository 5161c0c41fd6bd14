package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-workflow/internal/domain"
	"article-workflow/internal/metrics"
	"article-workflow/internal/mocks"
	"article-workflow/internal/repository"
	"article-workflow/internal/service"
	"article-workflow/internal/validator"
)

func newApprovalService(store repository.Store, n service.StateNotifier) *service.ApprovalService {
	return service.NewApprovalService(store, n, validator.NewValidator(), 3, 0)
}

func TestApprovalService_SubmitVote(t *testing.T) {
	ctx := context.Background()

	t.Run("economy 2025 reaches publication", func(t *testing.T) {
		store := repository.NewMemoryStore()
		notifier := mocks.NewMockStateNotifier(t)
		svc := newApprovalService(store, notifier)
		article := seedArticle(t, store, domain.StateInReview, "0", 1)

		notifier.EXPECT().
			Notify(mock.Anything, mock.Anything, domain.StateInReview, domain.StateInReview,
				"Current progress: 30.00%. The article remains in review.").
			Return(nil).Once()
		notifier.EXPECT().
			Notify(mock.Anything, mock.Anything, domain.StateInReview, domain.StatePublished,
				"The article reached 100.00% approval and has been PUBLISHED.").
			Return(nil).Once()

		out, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)
		assert.Equal(t, domain.StateInReview, out.State)
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))
		assert.Equal(t, "Economy 2025", out.ArticleTitle)
		assert.Equal(t, "Editor", out.RoleName)
		assert.Equal(t, "user.editor", out.VoterUsername)

		out, err = svc.SubmitVote(ctx, voteRequest(article.ID, chiefEditor, domain.DecisionApproved))
		require.NoError(t, err)
		assert.Equal(t, domain.StatePublished, out.State)
		assert.Equal(t, "100.00", out.Percentage.StringFixed(2))
		assert.Equal(t, "The article reached 100.00% approval and has been PUBLISHED.", out.Message)

		stored := mustGet(t, store, article.ID)
		assert.Equal(t, domain.StatePublished, stored.State)
		assert.Equal(t, "100.00", stored.ApprovalPercentage.StringFixed(2))
	})

	t.Run("overshoot is recorded as is", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := newApprovalService(store, nil)
		article := seedArticle(t, store, domain.StateInReview, "60.00", 1)

		out, err := svc.SubmitVote(ctx, voteRequest(article.ID, chiefEditor, domain.DecisionApproved))
		require.NoError(t, err)
		assert.Equal(t, domain.StatePublished, out.State)
		assert.Equal(t, "130.00", out.Percentage.StringFixed(2))
	})

	t.Run("rejection moves to observed without touching percentage", func(t *testing.T) {
		store := repository.NewMemoryStore()
		notifier := mocks.NewMockStateNotifier(t)
		svc := newApprovalService(store, notifier)
		article := seedArticle(t, store, domain.StateInReview, "30.00", 1)

		notifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(a domain.Article) bool {
				return a.ID == article.ID && a.State == domain.StateObserved
			}), domain.StateInReview, domain.StateObserved, mock.Anything).
			Return(nil).Once()

		out, err := svc.SubmitVote(ctx, voteRequest(article.ID, reviewer, domain.DecisionRejected))
		require.NoError(t, err)
		assert.Equal(t, domain.StateObserved, out.State)
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))
		assert.Equal(t, "The article was rejected and marked as Observed. The author must make the required corrections.", out.Message)
	})

	t.Run("second vote from the same role is a duplicate", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := newApprovalService(store, nil)
		article := seedArticle(t, store, domain.StateInReview, "0", 1)

		_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)

		for _, decision := range domain.ValidDecisions {
			_, err = svc.SubmitVote(ctx, voteRequest(article.ID, editor, decision))
			var dup *domain.DuplicateVoteError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, "Editor has already reviewed this article", err.Error())
			assert.Equal(t, domain.StateInReview, dup.State)
		}

		stored := mustGet(t, store, article.ID)
		assert.Equal(t, "30.00", stored.ApprovalPercentage.StringFixed(2))
	})

	t.Run("duplicate is reported before the state check", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := newApprovalService(store, nil)
		article := seedArticle(t, store, domain.StateInReview, "30.00", 1)

		_, err := svc.SubmitVote(ctx, voteRequest(article.ID, chiefEditor, domain.DecisionApproved))
		require.NoError(t, err)

		_, err = svc.SubmitVote(ctx, voteRequest(article.ID, chiefEditor, domain.DecisionApproved))
		var dup *domain.DuplicateVoteError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, domain.StatePublished, dup.State)
	})

	t.Run("states outside review refuse votes", func(t *testing.T) {
		for _, st := range []domain.State{domain.StateDraft, domain.StatePublished, domain.StateObserved} {
			for _, decision := range domain.ValidDecisions {
				t.Run(fmt.Sprintf("%s/%s", st, decision), func(t *testing.T) {
					store := repository.NewMemoryStore()
					notifier := mocks.NewMockStateNotifier(t)
					svc := newApprovalService(store, notifier)
					article := seedArticle(t, store, st, "40.00", 1)

					_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, decision))
					require.ErrorIs(t, err, domain.ErrInvalidTransition)

					var te *domain.TransitionError
					require.ErrorAs(t, err, &te)
					assert.Equal(t, st, te.State)

					stored := mustGet(t, store, article.ID)
					assert.Equal(t, st, stored.State)
					assert.Equal(t, "40.00", stored.ApprovalPercentage.StringFixed(2))

					v, err := store.Votes().FindVote(ctx, article.ID, 1, editor.ID)
					require.NoError(t, err)
					assert.Nil(t, v)
				})
			}
		}
	})

	t.Run("missing article", func(t *testing.T) {
		svc := newApprovalService(repository.NewMemoryStore(), nil)
		_, err := svc.SubmitVote(ctx, voteRequest(uuid.New().String(), editor, domain.DecisionApproved))
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("invalid request is rejected before touching storage", func(t *testing.T) {
		store := &flakyStore{MemoryStore: repository.NewMemoryStore(), failures: -1, err: errors.New("must not be called")}
		svc := newApprovalService(store, nil)

		req := voteRequest(uuid.New().String(), editor, "ABSTAIN")
		_, err := svc.SubmitVote(ctx, req)
		require.Error(t, err)
		assert.NotNil(t, validator.FieldErrors(err))
		assert.Equal(t, int32(0), store.calls.Load())
	})

	t.Run("observer failure does not fail the vote", func(t *testing.T) {
		store := repository.NewMemoryStore()
		notifier := mocks.NewMockStateNotifier(t)
		svc := newApprovalService(store, notifier)
		article := seedArticle(t, store, domain.StateInReview, "0", 1)

		notifier.EXPECT().
			Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.ObserverError{Observer: "email", Err: errors.New("smtp down")}).Once()

		out, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))
		assert.Equal(t, "30.00", mustGet(t, store, article.ID).ApprovalPercentage.StringFixed(2))
	})

	t.Run("vote captures weight and review cycle", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := newApprovalService(store, nil)
		article := seedArticle(t, store, domain.StateInReview, "0", 4)

		comment := "needs sources"
		req := voteRequest(article.ID, reviewer, domain.DecisionRejected)
		req.Comment = &comment
		_, err := svc.SubmitVote(ctx, req)
		require.NoError(t, err)

		v, err := store.Votes().FindVote(ctx, article.ID, 4, reviewer.ID)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, "30.00", v.RoleWeight.StringFixed(2))
		assert.Equal(t, domain.DecisionRejected, v.Decision)
		require.NotNil(t, v.Comment)
		assert.Equal(t, comment, *v.Comment)
	})
}

func TestApprovalService_Threshold(t *testing.T) {
	ctx := context.Background()

	sequences := [][]string{
		{"10", "20", "30", "40"},
		{"99.99", "0.01"},
		{"33.33", "33.33", "33.33", "0.01"},
		{"50", "49.99", "0.02"},
		{"100"},
		{"0", "0", "100"},
	}

	for _, weights := range sequences {
		t.Run(fmt.Sprint(weights), func(t *testing.T) {
			store := repository.NewMemoryStore()
			svc := newApprovalService(store, nil)
			article := seedArticle(t, store, domain.StateInReview, "0", 1)

			sum := decimal.Zero
			for i, w := range weights {
				role := domain.Role{ID: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("Role%d", i), Weight: decimal.RequireFromString(w)}
				out, err := svc.SubmitVote(ctx, voteRequest(article.ID, role, domain.DecisionApproved))
				require.NoError(t, err)

				sum = sum.Add(role.Weight)
				assert.Equal(t, sum.StringFixed(2), out.Percentage.StringFixed(2))
				if sum.GreaterThanOrEqual(domain.ApprovalThreshold) {
					assert.Equal(t, domain.StatePublished, out.State)
					assert.Equal(t, len(weights)-1, i, "publication must happen on the last vote of the sequence")
				} else {
					assert.Equal(t, domain.StateInReview, out.State)
				}
			}
		})
	}
}

func TestApprovalService_Retry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries persistence conflicts", func(t *testing.T) {
		mem := repository.NewMemoryStore()
		store := &flakyStore{MemoryStore: mem, failures: 2, err: fmt.Errorf("lock article: %w", domain.ErrPersistenceConflict)}
		svc := newApprovalService(store, nil)
		article := seedArticle(t, mem, domain.StateInReview, "0", 1)
		retries := testutil.ToFloat64(metrics.PersistenceConflictRetries)

		out, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))
		assert.Equal(t, int32(3), store.calls.Load())
		assert.Equal(t, retries+2, testutil.ToFloat64(metrics.PersistenceConflictRetries))
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		mem := repository.NewMemoryStore()
		store := &flakyStore{MemoryStore: mem, failures: -1, err: domain.ErrPersistenceConflict}
		svc := newApprovalService(store, nil)
		article := seedArticle(t, mem, domain.StateInReview, "0", 1)

		_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.ErrorIs(t, err, domain.ErrPersistenceConflict)
		assert.Equal(t, int32(3), store.calls.Load())
		assert.Equal(t, "0.00", mustGet(t, mem, article.ID).ApprovalPercentage.StringFixed(2))
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		mem := repository.NewMemoryStore()
		refused := errors.New("connection refused")
		store := &flakyStore{MemoryStore: mem, failures: -1, err: refused}
		svc := newApprovalService(store, nil)
		article := seedArticle(t, mem, domain.StateInReview, "0", 1)

		_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.ErrorIs(t, err, refused)
		assert.Equal(t, int32(1), store.calls.Load())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		mem := repository.NewMemoryStore()
		store := &flakyStore{MemoryStore: mem, failures: -1, err: domain.ErrPersistenceConflict}
		svc := service.NewApprovalService(store, nil, validator.NewValidator(), 5, 0)
		article := seedArticle(t, mem, domain.StateInReview, "0", 1)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.SubmitVote(cctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), store.calls.Load())
	})

	t.Run("single attempt when max attempts is one", func(t *testing.T) {
		mem := repository.NewMemoryStore()
		store := &flakyStore{MemoryStore: mem, failures: -1, err: domain.ErrPersistenceConflict}
		svc := service.NewApprovalService(store, nil, validator.NewValidator(), 1, 0)
		article := seedArticle(t, mem, domain.StateInReview, "0", 1)

		_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.ErrorIs(t, err, domain.ErrPersistenceConflict)
		assert.Equal(t, int32(1), store.calls.Load())
	})
}

func TestApprovalService_Concurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent votes from distinct roles are all counted", func(t *testing.T) {
		store := repository.NewMemoryStore()
		notifier := mocks.NewMockStateNotifier(t)
		notifier.EXPECT().Notify(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(50)
		svc := newApprovalService(store, notifier)
		article := seedArticle(t, store, domain.StateInReview, "0", 1)

		var wg sync.WaitGroup
		errs := make(chan error, 50)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				role := domain.Role{ID: fmt.Sprintf("role-%d", i), Name: fmt.Sprintf("Role%d", i), Weight: decimal.NewFromInt(1)}
				_, err := svc.SubmitVote(ctx, voteRequest(article.ID, role, domain.DecisionApproved))
				errs <- err
			}(i)
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		stored := mustGet(t, store, article.ID)
		assert.Equal(t, "50.00", stored.ApprovalPercentage.StringFixed(2))
		assert.Equal(t, domain.StateInReview, stored.State)
	})

	t.Run("concurrent votes from one role record exactly one", func(t *testing.T) {
		store := repository.NewMemoryStore()
		svc := newApprovalService(store, nil)
		article := seedArticle(t, store, domain.StateInReview, "0", 1)

		var (
			wg         sync.WaitGroup
			mu         sync.Mutex
			accepted   int
			duplicates int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					accepted++
				case errors.Is(err, domain.ErrDuplicateVote):
					duplicates++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, accepted)
		assert.Equal(t, 9, duplicates)
		assert.Equal(t, "30.00", mustGet(t, store, article.ID).ApprovalPercentage.StringFixed(2))
	})
}

func TestApprovalService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("resubmission opens a new cycle and keeps history", func(t *testing.T) {
		store := repository.NewMemoryStore()
		approvals := newApprovalService(store, nil)
		articles := service.NewArticleService(store, nil, validator.NewValidator())

		article, err := articles.Create(ctx, authorID, domain.ArticleInput{Title: "Economy 2025", Body: "Outlook"})
		require.NoError(t, err)
		_, err = articles.SendToReview(ctx, article.ID, authorID)
		require.NoError(t, err)

		_, err = approvals.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)
		out, err := approvals.SubmitVote(ctx, voteRequest(article.ID, reviewer, domain.DecisionRejected))
		require.NoError(t, err)
		assert.Equal(t, domain.StateObserved, out.State)
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))

		edited, err := articles.Update(ctx, article.ID, authorID, domain.ArticleInput{Title: "Economy 2025", Body: "Outlook, with sources"})
		require.NoError(t, err)
		assert.Equal(t, domain.StateDraft, edited.State)
		assert.Equal(t, "0.00", edited.ApprovalPercentage.StringFixed(2))

		resubmitted, err := articles.SendToReview(ctx, article.ID, authorID)
		require.NoError(t, err)
		assert.Equal(t, 2, resubmitted.ReviewCycle)
		assert.Equal(t, "0.00", resubmitted.ApprovalPercentage.StringFixed(2))

		out, err = approvals.SubmitVote(ctx, voteRequest(article.ID, editor, domain.DecisionApproved))
		require.NoError(t, err, "roles that voted in an earlier cycle may vote again")
		assert.Equal(t, "30.00", out.Percentage.StringFixed(2))

		history, err := approvals.History(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, 2, history[0].Vote.ReviewCycle)
		assert.Equal(t, editor.Name, history[0].Vote.RoleName)
		assert.Equal(t, reviewer.Name, history[1].Vote.RoleName)
		assert.Equal(t, 1, history[2].Vote.ReviewCycle)
		for _, rec := range history {
			assert.Equal(t, "Economy 2025", rec.ArticleTitle)
			assert.Equal(t, domain.StateInReview, rec.State)
			assert.Equal(t, "30.00", rec.Percentage.StringFixed(2))
		}
	})

	t.Run("empty history", func(t *testing.T) {
		store := repository.NewMemoryStore()
		article := seedArticle(t, store, domain.StateDraft, "0", 0)

		history, err := newApprovalService(store, nil).History(ctx, article.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("missing article", func(t *testing.T) {
		svc := newApprovalService(repository.NewMemoryStore(), nil)

		_, err := svc.History(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)

		_, err = svc.History(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}

func TestApprovalService_Tally(t *testing.T) {
	ctx := context.Background()

	t.Run("counts only the current cycle", func(t *testing.T) {
		store := repository.NewMemoryStore()
		approvals := newApprovalService(store, nil)
		articles := service.NewArticleService(store, nil, validator.NewValidator())

		a := seedArticle(t, store, domain.StateInReview, "0", 1)
		_, err := approvals.SubmitVote(ctx, voteRequest(a.ID, editor, domain.DecisionApproved))
		require.NoError(t, err)
		_, err = approvals.SubmitVote(ctx, voteRequest(a.ID, reviewer, domain.DecisionRejected))
		require.NoError(t, err)

		tally, err := approvals.Tally(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, tally.Approvals)
		assert.Equal(t, 1, tally.Rejections)
		assert.Equal(t, domain.StateObserved, tally.State)

		_, err = articles.SendToReview(ctx, a.ID, authorID)
		require.NoError(t, err)
		_, err = approvals.SubmitVote(ctx, voteRequest(a.ID, chiefEditor, domain.DecisionApproved))
		require.NoError(t, err)

		tally, err = approvals.Tally(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, tally.ReviewCycle)
		assert.Equal(t, 1, tally.Approvals)
		assert.Equal(t, 0, tally.Rejections)
		assert.Equal(t, "70.00", tally.Percentage.StringFixed(2))
	})

	t.Run("missing article", func(t *testing.T) {
		_, err := newApprovalService(repository.NewMemoryStore(), nil).Tally(ctx, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})
}
