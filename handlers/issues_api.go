package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/permissions"
	"github.com/worstfriend/overseerr/services"

	"github.com/go-chi/chi/v5"
)

type PageInfo struct {
	Pages    int `json:"pages"`
	PageSize int `json:"pageSize"`
	Results  int `json:"results"`
	Page     int `json:"page"`
}

type issueListResponse struct {
	PageInfo PageInfo       `json:"pageInfo"`
	Results  []models.Issue `json:"results"`
}

// makePageInfo computes the pagination envelope for a result window.
func makePageInfo(total, pageSize, skip int) PageInfo {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return PageInfo{
		Pages:    pages,
		PageSize: pageSize,
		Results:  total,
		Page:     skip/pageSize + 1,
	}
}

// parseStatusToken accepts exactly the two path-level status tokens.
func parseStatusToken(token string) (models.IssueStatus, bool) {
	switch token {
	case "resolved":
		return models.IssueStatusResolved, true
	case "open":
		return models.IssueStatusOpen, true
	default:
		return 0, false
	}
}

func parsePositiveInt(value string, def int) int {
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// ListIssuesHandler returns one page of issues. The filter query parameter the
// list page sends is accepted but not applied.
func ListIssuesHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	pageSize := parsePositiveInt(r.URL.Query().Get("take"), 10)
	if pageSize == 0 {
		pageSize = 10
	}
	skip := parsePositiveInt(r.URL.Query().Get("skip"), 0)
	sort := r.URL.Query().Get("sort")

	count, err := services.CountIssues()
	if err != nil {
		slog.Error("Failed to count issues", "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to retrieve issues.")
		return
	}

	issues, err := services.ListIssues(pageSize, skip, sort)
	if err != nil {
		slog.Error("Failed to list issues", "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to retrieve issues.")
		return
	}

	writeJSON(w, http.StatusOK, issueListResponse{
		PageInfo: makePageInfo(count, pageSize, skip),
		Results:  issues,
	})
}

type createIssueRequest struct {
	Message        string `json:"message"`
	MediaID        int    `json:"mediaId"`
	IssueType      int    `json:"issueType"`
	ProblemSeason  int    `json:"problemSeason"`
	ProblemEpisode int    `json:"problemEpisode"`
}

func CreateIssueHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	var req createIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	issue, err := services.CreateIssue(
		user.ID,
		models.IssueType(req.IssueType),
		req.MediaID,
		req.ProblemSeason,
		req.ProblemEpisode,
		req.Message,
	)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			apiError(w, http.StatusNotFound, "Media does not exist.")
			return
		}
		slog.Error("Failed to create issue", "user_id", user.ID, "media_id", req.MediaID, "error", err)
		apiError(w, http.StatusInternalServerError, "Failed to create issue.")
		return
	}

	slog.Info("Issue created", "issue_id", issue.ID, "user_id", user.ID, "media_id", req.MediaID)

	writeJSON(w, http.StatusOK, issue)
}

func GetIssueHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	issueID, err := ParseIDFromURL(chi.URLParam(r, "issueId"))
	if err != nil {
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	issue, err := services.GetIssueByID(issueID)
	if err != nil {
		slog.Debug("Failed to retrieve issue", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	if issue.CreatedBy.ID != user.ID &&
		!user.HasPermission([]permissions.Permission{permissions.ManageIssues, permissions.ViewIssues}, permissions.CheckOr) {
		apiError(w, http.StatusForbidden, "You do not have permission to view this issue.")
		return
	}

	writeJSON(w, http.StatusOK, issue)
}

type createCommentRequest struct {
	Message string `json:"message"`
}

func CreateIssueCommentHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	issueID, err := ParseIDFromURL(chi.URLParam(r, "issueId"))
	if err != nil {
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	issue, err := services.GetIssueByID(issueID)
	if err != nil {
		slog.Debug("Something went wrong creating an issue comment", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	if issue.CreatedBy.ID != user.ID &&
		!user.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr) {
		apiError(w, http.StatusForbidden, "You do not have permission to comment on this issue.")
		return
	}

	if err := services.AddComment(issueID, user.ID, req.Message); err != nil {
		slog.Debug("Something went wrong creating an issue comment", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	updated, err := services.GetIssueByID(issueID)
	if err != nil {
		slog.Debug("Something went wrong creating an issue comment", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// UpdateIssueStatusHandler flips an issue between open and resolved. Both
// directions are always allowed; repeating a transition is a no-op write.
func UpdateIssueStatusHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	newStatus, ok := parseStatusToken(chi.URLParam(r, "status"))
	if !ok {
		apiError(w, http.StatusBadRequest, "You must provide a valid status")
		return
	}

	issueID, err := ParseIDFromURL(chi.URLParam(r, "issueId"))
	if err != nil {
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	if _, err := services.GetIssueByID(issueID); err != nil {
		slog.Debug("Something went wrong updating an issue status", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	if err := services.SetIssueStatus(issueID, newStatus); err != nil {
		slog.Debug("Something went wrong updating an issue status", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	slog.Info("Issue status updated", "issue_id", issueID, "status", int(newStatus), "user_id", user.ID)

	updated, err := services.GetIssueByID(issueID)
	if err != nil {
		slog.Debug("Something went wrong updating an issue status", "issue_id", issueID, "error", err)
		apiError(w, http.StatusInternalServerError, "Issue not found.")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

type updateCommentRequest struct {
	Message string `json:"message"`
}

// UpdateIssueCommentHandler edits a comment's message. Editing the first
// comment of an issue rewrites its description.
func UpdateIssueCommentHandler(w http.ResponseWriter, r *http.Request) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		apiError(w, http.StatusInternalServerError, "User missing from request.")
		return
	}

	commentID, err := ParseIDFromURL(chi.URLParam(r, "commentId"))
	if err != nil {
		apiError(w, http.StatusInternalServerError, "Comment not found.")
		return
	}

	var req updateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comment, err := services.GetCommentByID(commentID)
	if err != nil {
		slog.Debug("Failed to retrieve issue comment", "comment_id", commentID, "error", err)
		apiError(w, http.StatusInternalServerError, "Comment not found.")
		return
	}

	if comment.User.ID != user.ID &&
		!user.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr) {
		apiError(w, http.StatusForbidden, "You do not have permission to edit this comment.")
		return
	}

	if err := services.UpdateCommentMessage(commentID, req.Message); err != nil {
		slog.Debug("Failed to update issue comment", "comment_id", commentID, "error", err)
		apiError(w, http.StatusInternalServerError, "Comment not found.")
		return
	}

	updated, err := services.GetCommentByID(commentID)
	if err != nil {
		slog.Debug("Failed to retrieve issue comment", "comment_id", commentID, "error", err)
		apiError(w, http.StatusInternalServerError, "Comment not found.")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
