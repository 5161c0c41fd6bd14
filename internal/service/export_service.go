package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"article-workflow/internal/domain"
	"article-workflow/internal/logger"
	"article-workflow/internal/repository"
	"article-workflow/internal/state"
)

// Export formats.
const (
	FormatNDJSON = "ndjson"
	FormatCSV    = "csv"
)

// exportFlushEvery is how many rows are written between flushes.
const exportFlushEvery = 100

// ErrUnsupportedFormat is returned for export formats other than csv and ndjson.
var ErrUnsupportedFormat = errors.New("unsupported export format")

var (
	voteCSVHeader    = []string{"id", "article_id", "review_cycle", "voter_id", "voter_username", "role", "role_weight", "decision", "comment", "voted_at"}
	articleCSVHeader = []string{"id", "title", "author_id", "state", "approval_percentage", "review_cycle", "created_at", "updated_at"}
)

// ExportService streams vote history and article listings as CSV or NDJSON.
type ExportService struct {
	store repository.Store
}

// NewExportService creates a new ExportService.
func NewExportService(store repository.Store) *ExportService {
	return &ExportService{store: store}
}

type voteRow struct {
	ID            string  `json:"id"`
	ArticleID     string  `json:"article_id"`
	ReviewCycle   int     `json:"review_cycle"`
	VoterID       string  `json:"voter_id"`
	VoterUsername string  `json:"voter_username"`
	Role          string  `json:"role"`
	RoleWeight    string  `json:"role_weight"`
	Decision      string  `json:"decision"`
	Comment       *string `json:"comment,omitempty"`
	VotedAt       string  `json:"voted_at"`
}

func (r voteRow) record() []string {
	comment := ""
	if r.Comment != nil {
		comment = *r.Comment
	}
	return []string{r.ID, r.ArticleID, strconv.Itoa(r.ReviewCycle), r.VoterID, r.VoterUsername, r.Role, r.RoleWeight, r.Decision, comment, r.VotedAt}
}

type articleRow struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	AuthorID           string `json:"author_id"`
	State              string `json:"state"`
	ApprovalPercentage string `json:"approval_percentage"`
	ReviewCycle        int    `json:"review_cycle"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

func (r articleRow) record() []string {
	return []string{r.ID, r.Title, r.AuthorID, r.State, r.ApprovalPercentage, strconv.Itoa(r.ReviewCycle), r.CreatedAt, r.UpdatedAt}
}

// StreamHistory writes every vote on the article, oldest first. Nothing is
// written when the format is unsupported or the article does not exist.
func (s *ExportService) StreamHistory(ctx context.Context, articleID, format string, writer StreamWriter) (int, error) {
	if err := checkFormat(format); err != nil {
		return 0, err
	}
	if !isUUID(articleID) {
		return 0, domain.ErrArticleNotFound
	}

	article, err := s.store.Articles().Get(ctx, articleID)
	if err != nil {
		return 0, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return 0, domain.ErrArticleNotFound
	}

	votes, err := s.store.Votes().ListByArticle(ctx, articleID, false)
	if err != nil {
		return 0, fmt.Errorf("list votes: %w", err)
	}

	rows := make([]voteRow, 0, len(votes))
	for _, v := range votes {
		rows = append(rows, voteRow{
			ID:            v.ID,
			ArticleID:     v.ArticleID,
			ReviewCycle:   v.ReviewCycle,
			VoterID:       v.VoterID,
			VoterUsername: v.VoterUsername,
			Role:          v.RoleName,
			RoleWeight:    v.RoleWeight.StringFixed(2),
			Decision:      string(v.Decision),
			Comment:       v.Comment,
			VotedAt:       v.VotedAt.UTC().Format(time.RFC3339),
		})
	}

	count, err := writeRows(ctx, writer, format, voteCSVHeader, rows)
	if err != nil {
		return count, fmt.Errorf("stream votes: %w", err)
	}

	logger.WithArticleID(articleID).InfoContext(ctx, "Vote history exported",
		slog.String("format", format),
		slog.Int("count", count))
	return count, nil
}

// StreamArticles writes the articles matching filter, newest first.
func (s *ExportService) StreamArticles(ctx context.Context, filter domain.ArticleFilter, format string, writer StreamWriter) (int, error) {
	if err := checkFormat(format); err != nil {
		return 0, err
	}
	if filter.State != "" {
		if _, err := state.Resolve(filter.State); err != nil {
			return 0, err
		}
	}

	articles, err := s.store.Articles().List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("list articles: %w", err)
	}

	rows := make([]articleRow, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, articleRow{
			ID:                 a.ID,
			Title:              a.Title,
			AuthorID:           a.AuthorID,
			State:              string(a.State),
			ApprovalPercentage: a.ApprovalPercentage.StringFixed(2),
			ReviewCycle:        a.ReviewCycle,
			CreatedAt:          a.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:          a.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	count, err := writeRows(ctx, writer, format, articleCSVHeader, rows)
	if err != nil {
		return count, fmt.Errorf("stream articles: %w", err)
	}

	logger.InfoContext(ctx, "Articles exported",
		slog.String("format", format),
		slog.String("state", string(filter.State)),
		slog.Int("count", count))
	return count, nil
}

func checkFormat(format string) error {
	if format != FormatCSV && format != FormatNDJSON {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}

type csvRecorder interface {
	record() []string
}

// streamAdapter lets encoding/csv and encoding/json write to a StreamWriter.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func writeRows[R csvRecorder](ctx context.Context, writer StreamWriter, format string, header []string, rows []R) (int, error) {
	out := streamAdapter{w: writer}
	var count int

	if format == FormatCSV {
		cw := csv.NewWriter(out)
		if err := cw.Write(header); err != nil {
			return 0, fmt.Errorf("write header: %w", err)
		}
		for _, r := range rows {
			if err := ctx.Err(); err != nil {
				return count, err
			}
			if err := cw.Write(r.record()); err != nil {
				return count, fmt.Errorf("write row: %w", err)
			}
			count++
			if count%exportFlushEvery == 0 {
				cw.Flush()
				writer.Flush()
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return count, fmt.Errorf("flush csv: %w", err)
		}
		writer.Flush()
		return count, nil
	}

	encoder := json.NewEncoder(out)
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		if err := encoder.Encode(r); err != nil {
			return count, fmt.Errorf("write json: %w", err)
		}
		count++
		if count%exportFlushEvery == 0 {
			writer.Flush()
		}
	}
	writer.Flush()
	return count, nil
}
