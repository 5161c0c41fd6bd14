package handler

import (
	"article-workflow/internal/domain"
)

// ArticleResponse is the API representation of an article.
type ArticleResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Body               string `json:"body"`
	AuthorID           string `json:"author_id"`
	State              string `json:"state"`
	ApprovalPercentage string `json:"approval_percentage"`
	ReviewCycle        int    `json:"review_cycle"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// ArticleListResponse wraps a page of articles.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// VoteResponse is the result of an accepted vote.
type VoteResponse struct {
	ArticleID          string `json:"article_id"`
	ArticleTitle       string `json:"article_title"`
	VoterUsername      string `json:"voter_username"`
	Role               string `json:"role"`
	RoleWeight         string `json:"role_weight"`
	Decision           string `json:"decision"`
	ApprovalPercentage string `json:"approval_percentage"`
	State              string `json:"state"`
	Message            string `json:"message"`
}

// VoteHistoryEntry is one row of an article's vote history.
type VoteHistoryEntry struct {
	ID                 string  `json:"id"`
	ArticleID          string  `json:"article_id"`
	ArticleTitle       string  `json:"article_title"`
	ReviewCycle        int     `json:"review_cycle"`
	VoterUsername      string  `json:"voter_username"`
	Role               string  `json:"role"`
	RoleWeight         string  `json:"role_weight"`
	Decision           string  `json:"decision"`
	Comment            *string `json:"comment,omitempty"`
	VotedAt            string  `json:"voted_at"`
	ApprovalPercentage string  `json:"approval_percentage"`
	State              string  `json:"state"`
}

// VoteHistoryResponse wraps an article's vote history.
type VoteHistoryResponse struct {
	ArticleID string             `json:"article_id"`
	Votes     []VoteHistoryEntry `json:"votes"`
}

// VoteTallyResponse summarizes the current review cycle.
type VoteTallyResponse struct {
	ArticleID          string `json:"article_id"`
	ReviewCycle        int    `json:"review_cycle"`
	Approvals          int    `json:"approvals"`
	Rejections         int    `json:"rejections"`
	ApprovalPercentage string `json:"approval_percentage"`
	State              string `json:"state"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:                 a.ID,
		Title:              a.Title,
		Body:               a.Body,
		AuthorID:           a.AuthorID,
		State:              string(a.State),
		ApprovalPercentage: a.ApprovalPercentage.StringFixed(2),
		ReviewCycle:        a.ReviewCycle,
		CreatedAt:          a.CreatedAt.Format(TimeFormat),
		UpdatedAt:          a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleListResponse(articles []domain.Article) ArticleListResponse {
	resp := ArticleListResponse{Articles: make([]ArticleResponse, 0, len(articles))}
	for i := range articles {
		resp.Articles = append(resp.Articles, toArticleResponse(&articles[i]))
	}
	resp.Count = len(resp.Articles)
	return resp
}

func toVoteResponse(o *domain.VoteOutcome) VoteResponse {
	return VoteResponse{
		ArticleID:          o.ArticleID,
		ArticleTitle:       o.ArticleTitle,
		VoterUsername:      o.VoterUsername,
		Role:               o.RoleName,
		RoleWeight:         o.RoleWeight.StringFixed(2),
		Decision:           string(o.Decision),
		ApprovalPercentage: o.Percentage.StringFixed(2),
		State:              string(o.State),
		Message:            o.Message,
	}
}

func toVoteHistoryEntry(r domain.VoteRecord) VoteHistoryEntry {
	return VoteHistoryEntry{
		ID:                 r.Vote.ID,
		ArticleID:          r.Vote.ArticleID,
		ArticleTitle:       r.ArticleTitle,
		ReviewCycle:        r.Vote.ReviewCycle,
		VoterUsername:      r.Vote.VoterUsername,
		Role:               r.Vote.RoleName,
		RoleWeight:         r.Vote.RoleWeight.StringFixed(2),
		Decision:           string(r.Vote.Decision),
		Comment:            r.Vote.Comment,
		VotedAt:            r.Vote.VotedAt.Format(TimeFormat),
		ApprovalPercentage: r.Percentage.StringFixed(2),
		State:              string(r.State),
	}
}
