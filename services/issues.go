package services

import (
	"database/sql"
	"fmt"

	"github.com/worstfriend/overseerr/database"
	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/permissions"
)

// ListIssues returns one page of issues with their creator and media attached.
// sort "modified" orders by last update; anything else orders by creation time.
func ListIssues(take, skip int, sort string) ([]models.Issue, error) {
	orderBy := "i.created_at DESC, i.id DESC"
	if sort == "modified" {
		orderBy = "i.updated_at DESC, i.id DESC"
	}

	query := `
		SELECT i.id, i.issue_type, i.status, i.problem_season, i.problem_episode,
		       i.created_at, i.updated_at,
		       u.id, u.username, u.email, u.permissions, u.created_at, u.updated_at,
		       m.id, m.media_type, m.tmdb_id, m.service_url, m.created_at, m.updated_at
		FROM issues i
		JOIN users u ON i.created_by = u.id
		JOIN media m ON i.media_id = m.id
		ORDER BY ` + orderBy + `
		LIMIT $1 OFFSET $2
	`
	rows, err := database.DB.Query(query, take, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	issues := []models.Issue{}
	for rows.Next() {
		issue, err := scanIssueRow(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *issue)
	}
	return issues, rows.Err()
}

func CountIssues() (int, error) {
	var count int
	err := database.DB.QueryRow("SELECT COUNT(*) FROM issues").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return count, nil
}

// CreateIssue persists a new open issue with its description as the first
// comment. The media reference must resolve or nothing is written.
func CreateIssue(userID int64, issueType models.IssueType, mediaID, problemSeason, problemEpisode int, message string) (*models.Issue, error) {
	if _, err := GetMediaByID(mediaID); err != nil {
		return nil, err
	}

	tx, err := database.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var issueID int
	err = tx.QueryRow(
		`INSERT INTO issues (issue_type, status, problem_season, problem_episode, media_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		int(issueType), int(models.IssueStatusOpen), problemSeason, problemEpisode, mediaID, userID,
	).Scan(&issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO issue_comments (issue_id, user_id, message) VALUES ($1, $2, $3)",
		issueID, userID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue description: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit issue: %w", err)
	}

	return GetIssueByID(issueID)
}

// GetIssueByID loads an issue with its media, creator and full comment thread
// (insertion order, comment authors attached).
func GetIssueByID(issueID int) (*models.Issue, error) {
	query := `
		SELECT i.id, i.issue_type, i.status, i.problem_season, i.problem_episode,
		       i.created_at, i.updated_at,
		       u.id, u.username, u.email, u.permissions, u.created_at, u.updated_at,
		       m.id, m.media_type, m.tmdb_id, m.service_url, m.created_at, m.updated_at
		FROM issues i
		JOIN users u ON i.created_by = u.id
		JOIN media m ON i.media_id = m.id
		WHERE i.id = $1
	`
	rows, err := database.DB.Query(query, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get issue: %w", err)
		}
		return nil, ErrNotFound
	}

	issue, err := scanIssueRow(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	comments, err := getIssueComments(issueID)
	if err != nil {
		return nil, err
	}
	issue.Comments = comments

	return issue, nil
}

func getIssueComments(issueID int) ([]models.IssueComment, error) {
	query := `
		SELECT c.id, c.issue_id, c.message, c.created_at, c.updated_at,
		       u.id, u.username, u.email, u.permissions, u.created_at, u.updated_at
		FROM issue_comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.issue_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`
	rows, err := database.DB.Query(query, issueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue comments: %w", err)
	}
	defer rows.Close()

	var comments []models.IssueComment
	for rows.Next() {
		var c models.IssueComment
		var perms int64
		err := rows.Scan(
			&c.ID, &c.IssueID, &c.Message, &c.CreatedAt, &c.UpdatedAt,
			&c.User.ID, &c.User.Username, &c.User.Email, &perms, &c.User.CreatedAt, &c.User.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue comment: %w", err)
		}
		c.User.Permissions = permissions.Permission(perms)
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// AddComment appends a comment to the issue's thread and bumps the issue's
// updated_at so "modified" sorting reflects new activity.
func AddComment(issueID int, userID int64, message string) error {
	tx, err := database.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO issue_comments (issue_id, user_id, message) VALUES ($1, $2, $3)",
		issueID, userID, message,
	)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}

	_, err = tx.Exec("UPDATE issues SET updated_at = CURRENT_TIMESTAMP WHERE id = $1", issueID)
	if err != nil {
		return fmt.Errorf("failed to touch issue: %w", err)
	}

	return tx.Commit()
}

func SetIssueStatus(issueID int, status models.IssueStatus) error {
	_, err := database.DB.Exec(
		"UPDATE issues SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2",
		int(status), issueID,
	)
	if err != nil {
		return fmt.Errorf("failed to update issue status: %w", err)
	}
	return nil
}

func GetCommentByID(commentID int) (*models.IssueComment, error) {
	var c models.IssueComment
	var perms int64
	err := database.DB.QueryRow(
		`SELECT c.id, c.issue_id, c.message, c.created_at, c.updated_at,
		        u.id, u.username, u.email, u.permissions, u.created_at, u.updated_at
		 FROM issue_comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.id = $1`,
		commentID,
	).Scan(
		&c.ID, &c.IssueID, &c.Message, &c.CreatedAt, &c.UpdatedAt,
		&c.User.ID, &c.User.Username, &c.User.Email, &perms, &c.User.CreatedAt, &c.User.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	c.User.Permissions = permissions.Permission(perms)

	return &c, nil
}

// UpdateCommentMessage edits a comment in place. Editing the first comment
// rewrites the issue's description.
func UpdateCommentMessage(commentID int, message string) error {
	tx, err := database.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var issueID int
	err = tx.QueryRow(
		"UPDATE issue_comments SET message = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 RETURNING issue_id",
		message, commentID,
	).Scan(&issueID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update comment: %w", err)
	}

	_, err = tx.Exec("UPDATE issues SET updated_at = CURRENT_TIMESTAMP WHERE id = $1", issueID)
	if err != nil {
		return fmt.Errorf("failed to touch issue: %w", err)
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssueRow(rows rowScanner) (*models.Issue, error) {
	var issue models.Issue
	var perms int64
	var serviceURL sql.NullString
	err := rows.Scan(
		&issue.ID, &issue.IssueType, &issue.Status, &issue.ProblemSeason, &issue.ProblemEpisode,
		&issue.CreatedAt, &issue.UpdatedAt,
		&issue.CreatedBy.ID, &issue.CreatedBy.Username, &issue.CreatedBy.Email, &perms,
		&issue.CreatedBy.CreatedAt, &issue.CreatedBy.UpdatedAt,
		&issue.Media.ID, &issue.Media.MediaType, &issue.Media.TmdbID, &serviceURL,
		&issue.Media.CreatedAt, &issue.Media.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan issue: %w", err)
	}
	issue.CreatedBy.Permissions = permissions.Permission(perms)
	issue.Media.ServiceURL = serviceURL.String
	return &issue, nil
}
