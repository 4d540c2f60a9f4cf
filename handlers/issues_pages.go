package handlers

import (
	"log/slog"
	"net/http"

	"github.com/worstfriend/overseerr/permissions"
)

type IssuesPageData struct {
	Username    string
	IsAdmin     bool
	CurrentPage string
	UserID      int64
	CanManage   bool
	CanCreate   bool
	IssueID     int
}

func pageData(r *http.Request, currentPage string) (*IssuesPageData, error) {
	user, err := GetCurrentUser(r)
	if err != nil || user == nil {
		return nil, err
	}

	return &IssuesPageData{
		Username:    user.Username,
		IsAdmin:     user.IsAdmin,
		CurrentPage: currentPage,
		UserID:      user.ID,
		CanManage:   user.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr),
		CanCreate:   user.HasPermission([]permissions.Permission{permissions.CreateIssues}, permissions.CheckOr),
	}, nil
}

// IssuesPageHandler renders the issue list shell; the page fetches pages from
// the issue API and re-fetches when the filter or sort selection changes.
func IssuesPageHandler(w http.ResponseWriter, r *http.Request) {
	data, err := pageData(r, "/issues")
	if err != nil || data == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := issuesTmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering issues template", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// IssueDetailsPageHandler renders the detail shell for one issue; the page
// fetches the issue and the media details and re-fetches after each mutation.
func IssueDetailsPageHandler(w http.ResponseWriter, r *http.Request) {
	data, err := pageData(r, "/issues")
	if err != nil || data == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	issueID, err := ParseIDFromURL(r.URL.Query().Get("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	data.IssueID = issueID

	if err := issueDetailsTmpl.ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering issue details template", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
