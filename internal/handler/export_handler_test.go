package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-workflow/internal/domain"
	"article-workflow/internal/mocks"
	"article-workflow/internal/service"
)

func exportRouter(h *ExportHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/articles/export", h.StreamArticles)
	router.GET("/api/v1/approvals/article/:articleId/export", h.StreamHistory)
	return router
}

func TestStreamHistory_NDJSON(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	router := exportRouter(NewExportHandler(mockService))

	articleID := uuid.New().String()
	mockService.EXPECT().
		StreamHistory(mock.Anything, articleID, "ndjson", mock.AnythingOfType("*handler.ginStreamWriter")).
		Run(func(ctx context.Context, articleID string, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte(`{"id":"vote-1","role":"Editor","decision":"APPROVED"}` + "\n"))
			_ = writer.Write([]byte(`{"id":"vote-2","role":"Reviewer","decision":"REJECTED"}` + "\n"))
		}).
		Return(2, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/approvals/article/"+articleID+"/export", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "votes_"+articleID+".ndjson")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Equal(t, 2, len(lines), "Expected 2 votes")
}

func TestStreamHistory_CSV(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	router := exportRouter(NewExportHandler(mockService))

	articleID := uuid.New().String()
	mockService.EXPECT().
		StreamHistory(mock.Anything, articleID, "csv", mock.Anything).
		Run(func(ctx context.Context, articleID string, format string, writer service.StreamWriter) {
			_ = writer.Write([]byte("id,article_id,review_cycle\nvote-1," + articleID + ",1\n"))
		}).
		Return(1, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/approvals/article/"+articleID+"/export?format=CSV", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Contains(t, lines[0], "id,article_id", "First line should be header")
}

func TestStreamHistory_ArticleNotFound(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	router := exportRouter(NewExportHandler(mockService))

	mockService.EXPECT().
		StreamHistory(mock.Anything, "missing", "ndjson", mock.Anything).
		Return(0, domain.ErrArticleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/approvals/article/missing/export", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "ArticleNotFound", decodeError(t, w).Kind)
}

func TestStreamHistory_InvalidFormat(t *testing.T) {
	mockService := mocks.NewMockExportServiceInterface(t)
	router := exportRouter(NewExportHandler(mockService))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/approvals/article/"+uuid.New().String()+"/export?format=xml", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamArticles(t *testing.T) {
	t.Run("passes the filter through", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		router := exportRouter(NewExportHandler(mockService))

		filter := domain.ArticleFilter{State: domain.StatePublished, AuthorID: "author-1"}
		mockService.EXPECT().
			StreamArticles(mock.Anything, filter, "csv", mock.Anything).
			Run(func(ctx context.Context, filter domain.ArticleFilter, format string, writer service.StreamWriter) {
				_ = writer.Write([]byte("id,title\narticle-1,Economy 2025\n"))
			}).
			Return(1, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export?format=csv&status=Published&author_id=author-1", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "articles.csv")
		assert.Contains(t, w.Body.String(), "Economy 2025")
	})

	t.Run("empty export still succeeds", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		router := exportRouter(NewExportHandler(mockService))

		mockService.EXPECT().
			StreamArticles(mock.Anything, domain.ArticleFilter{}, "ndjson", mock.Anything).
			Return(0, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		router := exportRouter(NewExportHandler(mockService))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/articles/export?status=Archived", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
