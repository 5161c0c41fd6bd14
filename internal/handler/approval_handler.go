package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"article-workflow/internal/domain"
	"article-workflow/internal/middleware"
	"article-workflow/internal/service"
)

// RoleLookup resolves a role name to its configured weight.
type RoleLookup interface {
	Lookup(name string) (domain.Role, error)
}

// VoteRequestBody is the payload of POST /api/v1/approvals.
type VoteRequestBody struct {
	ArticleID string  `json:"article_id"`
	Decision  string  `json:"decision"`
	Comment   *string `json:"comment,omitempty"`
}

// ApprovalHandler handles vote submission and history requests.
type ApprovalHandler struct {
	approvals service.ApprovalServiceInterface
	roles     RoleLookup
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvals service.ApprovalServiceInterface, roles RoleLookup) *ApprovalHandler {
	return &ApprovalHandler{approvals: approvals, roles: roles}
}

// SubmitVote handles POST /api/v1/approvals. The voter's role comes from
// the identity headers and its weight from the role catalog.
func (h *ApprovalHandler) SubmitVote(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if caller.Role == "" {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error: fmt.Sprintf("%s header is required to vote", middleware.UserRoleHeader),
			Kind:  "UnknownRole",
		})
		return
	}
	role, err := h.roles.Lookup(caller.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	var body VoteRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	req := domain.VoteRequest{
		ArticleID:     strings.TrimSpace(body.ArticleID),
		VoterID:       caller.UserID,
		VoterUsername: caller.Username,
		RoleID:        role.ID,
		RoleName:      role.Name,
		RoleWeight:    role.Weight,
		Decision:      domain.Decision(strings.ToUpper(strings.TrimSpace(body.Decision))),
		Comment:       body.Comment,
	}

	outcome, err := h.approvals.SubmitVote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVoteResponse(outcome))
}

// History handles GET /api/v1/approvals/article/:articleId.
func (h *ApprovalHandler) History(c *gin.Context) {
	articleID := c.Param("articleId")

	records, err := h.approvals.History(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := VoteHistoryResponse{ArticleID: articleID, Votes: make([]VoteHistoryEntry, 0, len(records))}
	for _, r := range records {
		resp.Votes = append(resp.Votes, toVoteHistoryEntry(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Tally handles GET /api/v1/approvals/article/:articleId/summary.
func (h *ApprovalHandler) Tally(c *gin.Context) {
	tally, err := h.approvals.Tally(c.Request.Context(), c.Param("articleId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VoteTallyResponse{
		ArticleID:          tally.ArticleID,
		ReviewCycle:        tally.ReviewCycle,
		Approvals:          tally.Approvals,
		Rejections:         tally.Rejections,
		ApprovalPercentage: tally.Percentage.StringFixed(2),
		State:              string(tally.State),
	})
}
