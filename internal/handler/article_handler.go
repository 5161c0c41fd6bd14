package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"article-workflow/internal/domain"
	"article-workflow/internal/service"
)

// ArticleHandler handles article authoring and listing requests.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// Create handles POST /api/v1/articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var in domain.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	article, err := h.articles.Create(c.Request.Context(), caller.UserID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// List handles GET /api/v1/articles. Without filters it returns published
// articles; ?status=, ?author_id=, ?limit= and ?offset= narrow the listing.
func (h *ArticleHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	authorID := strings.TrimSpace(c.Query("author_id"))

	limit, err := parseUintQuery(c, "limit", DefaultListLimit)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset, err := parseUintQuery(c, "offset", 0)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	filter := domain.ArticleFilter{AuthorID: authorID, Limit: limit, Offset: offset}
	switch {
	case status != "":
		st, err := domain.ParseState(status)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		filter.State = st
	case authorID == "":
		filter.State = domain.StatePublished
	}

	articles, err := h.articles.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponse(articles))
}

// ListPending handles GET /api/v1/articles/pending.
func (h *ArticleHandler) ListPending(c *gin.Context) {
	articles, err := h.articles.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponse(articles))
}

// ListByAuthor handles GET /api/v1/articles/author/:authorId.
func (h *ArticleHandler) ListByAuthor(c *gin.Context) {
	articles, err := h.articles.ListByAuthor(c.Request.Context(), c.Param("authorId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleListResponse(articles))
}

// Get handles GET /api/v1/articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Update handles PUT /api/v1/articles/:id.
func (h *ArticleHandler) Update(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var in domain.ArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	article, err := h.articles.Update(c.Request.Context(), c.Param("id"), caller.UserID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/v1/articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.articles.Delete(c.Request.Context(), c.Param("id"), caller.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SendToReview handles PUT /api/v1/articles/:id/send-to-review.
func (h *ArticleHandler) SendToReview(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	article, err := h.articles.SendToReview(c.Request.Context(), c.Param("id"), caller.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

func parseUintQuery(c *gin.Context, key string, def uint64) (uint64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %q", key, raw)
	}
	return v, nil
}
