package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"article-workflow/internal/domain"
	"article-workflow/internal/middleware"
	"article-workflow/internal/validator"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	State  string            `json:"state,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

var kindStatus = map[string]int{
	"ArticleNotFound":     http.StatusNotFound,
	"NotAuthor":           http.StatusForbidden,
	"UnknownRole":         http.StatusForbidden,
	"DuplicateVote":       http.StatusConflict,
	"InvalidTransition":   http.StatusConflict,
	"PersistenceConflict": http.StatusServiceUnavailable,
	"UnknownState":        http.StatusInternalServerError,
}

// respondError maps a service error to its HTTP status and error body.
func respondError(c *gin.Context, err error) {
	if fields := validator.FieldErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Kind: "Validation", Fields: fields})
		return
	}

	kind := domain.ErrorKind(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := ErrorResponse{Error: err.Error(), Kind: kind}

	var te *domain.TransitionError
	var dup *domain.DuplicateVoteError
	switch {
	case errors.As(err, &te):
		resp.State = string(te.State)
	case errors.As(err, &dup):
		resp.State = string(dup.State)
	}

	if status >= http.StatusInternalServerError {
		middleware.Logger(c).ErrorContext(c.Request.Context(), "Request failed",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		if kind == "internal" {
			resp.Error = "internal server error"
		}
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Kind: "Validation"})
}

// callerIdentity returns the caller or writes a 401.
func callerIdentity(c *gin.Context) (middleware.Identity, bool) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: middleware.UserIDHeader + " header is required",
			Kind:  "Unauthenticated",
		})
	}
	return id, ok
}
