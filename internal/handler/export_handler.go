package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"article-workflow/internal/domain"
	"article-workflow/internal/middleware"
	"article-workflow/internal/service"
)

// ExportHandler streams vote history and article listings as CSV or NDJSON.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamHistory handles GET /api/v1/approvals/article/:articleId/export?format=...
func (h *ExportHandler) StreamHistory(c *gin.Context) {
	articleID := c.Param("articleId")
	format, ok := exportFormat(c)
	if !ok {
		return
	}

	h.stream(c, "votes_"+articleID, format, func(w service.StreamWriter) (int, error) {
		return h.exportService.StreamHistory(c.Request.Context(), articleID, format, w)
	})
}

// StreamArticles handles GET /api/v1/articles/export?format=...&status=...&author_id=...
func (h *ExportHandler) StreamArticles(c *gin.Context) {
	format, ok := exportFormat(c)
	if !ok {
		return
	}

	filter := domain.ArticleFilter{AuthorID: strings.TrimSpace(c.Query("author_id"))}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		st, err := domain.ParseState(status)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		filter.State = st
	}

	h.stream(c, "articles", format, func(w service.StreamWriter) (int, error) {
		return h.exportService.StreamArticles(c.Request.Context(), filter, format, w)
	})
}

// stream sets download headers and runs fn. Errors raised before the first
// byte are reported as JSON; later ones can only be logged.
func (h *ExportHandler) stream(c *gin.Context, name, format string, fn func(service.StreamWriter) (int, error)) {
	log := middleware.Logger(c)

	contentType := "application/x-ndjson"
	if format == service.FormatCSV {
		contentType = "text/csv"
	}

	header := c.Writer.Header()
	header.Set("Content-Type", contentType)
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Content-Disposition", "attachment; filename=\""+name+"."+format+"\"")

	count, err := fn(&ginStreamWriter{writer: c.Writer})
	if err != nil {
		if !c.Writer.Written() {
			header.Del("Content-Type")
			header.Del("Content-Disposition")
			if errors.Is(err, service.ErrUnsupportedFormat) {
				badRequest(c, err.Error())
				return
			}
			respondError(c, err)
			return
		}
		log.ErrorContext(c.Request.Context(), "Streaming export failed",
			slog.String("export", name),
			slog.Int("count", count),
			slog.String("error", err.Error()))
		return
	}

	if !c.Writer.Written() {
		c.Status(http.StatusOK)
		c.Writer.WriteHeaderNow()
	}

	log.InfoContext(c.Request.Context(), "Streaming export completed",
		slog.String("export", name),
		slog.String("format", format),
		slog.Int("count", count))
}

func exportFormat(c *gin.Context) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", service.FormatNDJSON)))
	if format != service.FormatCSV && format != service.FormatNDJSON {
		badRequest(c, "format must be one of: csv, ndjson")
		return "", false
	}
	return format, true
}
