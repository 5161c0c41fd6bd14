package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"article-workflow/internal/domain"
)

// MemoryStore is an in-process Store. Used with STORE_DRIVER=memory and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	articles map[string]domain.Article
	votes    []domain.Vote

	locks articleLocks
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		articles: make(map[string]domain.Article),
		locks:    articleLocks{locks: make(map[string]*articleLock)},
	}
}

func (s *MemoryStore) Articles() ArticleRepository { return memoryArticles{s: s} }

func (s *MemoryStore) Votes() VoteLedger { return memoryVotes{s: s} }

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// InArticleTx holds a per-article mutex while fn runs and applies the staged
// writes only when fn returns nil.
func (s *MemoryStore) InArticleTx(ctx context.Context, articleID string, fn func(ctx context.Context, tx Tx) error) error {
	unlock := s.locks.lock(strings.TrimSpace(articleID))
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{s: s, articles: make(map[string]*domain.Article)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

// -- committed-state accessors --

func (s *MemoryStore) getArticle(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	return a, ok
}

func (s *MemoryStore) findVote(articleID string, cycle int, roleID string) (domain.Vote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findVoteIn(s.votes, articleID, cycle, roleID)
}

func (s *MemoryStore) votesFor(articleID string) []domain.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Vote, 0)
	for _, v := range s.votes {
		if v.ArticleID == articleID {
			items = append(items, v)
		}
	}
	return items
}

func findVoteIn(votes []domain.Vote, articleID string, cycle int, roleID string) (domain.Vote, bool) {
	for _, v := range votes {
		if v.ArticleID == articleID && v.ReviewCycle == cycle && v.RoleID == roleID {
			return v, true
		}
	}
	return domain.Vote{}, false
}

func sortVotes(items []domain.Vote, newestFirst bool) {
	if newestFirst {
		// reverse first so equal timestamps keep newest-inserted first
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].VotedAt.After(items[j].VotedAt)
		})
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].VotedAt.Before(items[j].VotedAt)
	})
}

func filterArticles(all map[string]domain.Article, f domain.ArticleFilter) []domain.Article {
	items := make([]domain.Article, 0)
	for _, a := range all {
		if f.State != "" && a.State != f.State {
			continue
		}
		if f.AuthorID != "" && a.AuthorID != f.AuthorID {
			continue
		}
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if f.Offset > 0 {
		if f.Offset >= uint64(len(items)) {
			return []domain.Article{}
		}
		items = items[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < uint64(len(items)) {
		items = items[:f.Limit]
	}
	return items
}

// -- non-transactional repositories --

type memoryArticles struct{ s *MemoryStore }

func (r memoryArticles) Create(_ context.Context, a *domain.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.articles[a.ID] = *a
	return nil
}

func (r memoryArticles) Get(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.s.getArticle(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r memoryArticles) Update(_ context.Context, a *domain.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[a.ID]; !ok {
		return domain.ErrArticleNotFound
	}
	r.s.articles[a.ID] = *a
	return nil
}

func (r memoryArticles) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	r.s.deleteLocked(id)
	return nil
}

func (r memoryArticles) List(_ context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterArticles(r.s.articles, f), nil
}

type memoryVotes struct{ s *MemoryStore }

func (r memoryVotes) FindVote(_ context.Context, articleID string, cycle int, roleID string) (*domain.Vote, error) {
	v, ok := r.s.findVote(articleID, cycle, roleID)
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r memoryVotes) Save(_ context.Context, v *domain.Vote) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := findVoteIn(r.s.votes, v.ArticleID, v.ReviewCycle, v.RoleID); ok {
		return &domain.DuplicateVoteError{ArticleID: v.ArticleID, RoleName: v.RoleName}
	}
	r.s.votes = append(r.s.votes, *v)
	return nil
}

func (r memoryVotes) ListByArticle(_ context.Context, articleID string, newestFirst bool) ([]domain.Vote, error) {
	items := r.s.votesFor(articleID)
	sortVotes(items, newestFirst)
	return items, nil
}

func (r memoryVotes) CountByDecision(_ context.Context, articleID string, cycle int, decision domain.Decision) (int, error) {
	count := 0
	for _, v := range r.s.votesFor(articleID) {
		if v.ReviewCycle == cycle && v.Decision == decision {
			count++
		}
	}
	return count, nil
}

// deleteLocked removes an article and its votes. Caller holds s.mu.
func (s *MemoryStore) deleteLocked(id string) {
	delete(s.articles, id)
	kept := s.votes[:0]
	for _, v := range s.votes {
		if v.ArticleID != id {
			kept = append(kept, v)
		}
	}
	s.votes = kept
}

// -- transaction --

// memoryTx stages writes; a nil entry in articles marks a delete.
type memoryTx struct {
	s        *MemoryStore
	articles map[string]*domain.Article
	votes    []domain.Vote
}

func (t *memoryTx) Articles() ArticleRepository { return txArticles{t: t} }

func (t *memoryTx) Votes() VoteLedger { return txVotes{t: t} }

func (t *memoryTx) article(id string) (domain.Article, bool) {
	if staged, ok := t.articles[id]; ok {
		if staged == nil {
			return domain.Article{}, false
		}
		return *staged, true
	}
	return t.s.getArticle(id)
}

func (t *memoryTx) commit() error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for _, v := range t.votes {
		if _, ok := findVoteIn(t.s.votes, v.ArticleID, v.ReviewCycle, v.RoleID); ok {
			return &domain.DuplicateVoteError{ArticleID: v.ArticleID, RoleName: v.RoleName}
		}
	}

	for id, a := range t.articles {
		if a == nil {
			t.s.deleteLocked(id)
			continue
		}
		t.s.articles[id] = *a
	}
	t.s.votes = append(t.s.votes, t.votes...)
	return nil
}

type txArticles struct{ t *memoryTx }

func (r txArticles) Create(_ context.Context, a *domain.Article) error {
	cp := *a
	r.t.articles[a.ID] = &cp
	return nil
}

func (r txArticles) Get(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.t.article(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r txArticles) Update(_ context.Context, a *domain.Article) error {
	if _, ok := r.t.article(a.ID); !ok {
		return domain.ErrArticleNotFound
	}
	cp := *a
	r.t.articles[a.ID] = &cp
	return nil
}

func (r txArticles) Delete(_ context.Context, id string) error {
	if _, ok := r.t.article(id); !ok {
		return domain.ErrArticleNotFound
	}
	r.t.articles[id] = nil
	return nil
}

// List reads committed state only.
func (r txArticles) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	return memoryArticles{s: r.t.s}.List(ctx, f)
}

type txVotes struct{ t *memoryTx }

func (r txVotes) FindVote(_ context.Context, articleID string, cycle int, roleID string) (*domain.Vote, error) {
	if v, ok := findVoteIn(r.t.votes, articleID, cycle, roleID); ok {
		return &v, nil
	}
	if v, ok := r.t.s.findVote(articleID, cycle, roleID); ok {
		return &v, nil
	}
	return nil, nil
}

func (r txVotes) Save(ctx context.Context, v *domain.Vote) error {
	existing, err := r.FindVote(ctx, v.ArticleID, v.ReviewCycle, v.RoleID)
	if err != nil {
		return err
	}
	if existing != nil {
		return &domain.DuplicateVoteError{ArticleID: v.ArticleID, RoleName: v.RoleName}
	}
	r.t.votes = append(r.t.votes, *v)
	return nil
}

func (r txVotes) ListByArticle(_ context.Context, articleID string, newestFirst bool) ([]domain.Vote, error) {
	items := r.t.s.votesFor(articleID)
	for _, v := range r.t.votes {
		if v.ArticleID == articleID {
			items = append(items, v)
		}
	}
	sortVotes(items, newestFirst)
	return items, nil
}

func (r txVotes) CountByDecision(ctx context.Context, articleID string, cycle int, decision domain.Decision) (int, error) {
	items, err := r.ListByArticle(ctx, articleID, false)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range items {
		if v.ReviewCycle == cycle && v.Decision == decision {
			count++
		}
	}
	return count, nil
}

// -- per-article locks --

type articleLocks struct {
	mu    sync.Mutex
	locks map[string]*articleLock
}

type articleLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until the article's mutex is held and returns its release func.
// Entries are dropped once no goroutine holds or waits on them.
func (l *articleLocks) lock(id string) func() {
	l.mu.Lock()
	al, ok := l.locks[id]
	if !ok {
		al = &articleLock{}
		l.locks[id] = al
	}
	al.refs++
	l.mu.Unlock()

	al.mu.Lock()
	return func() {
		al.mu.Unlock()
		l.mu.Lock()
		al.refs--
		if al.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
