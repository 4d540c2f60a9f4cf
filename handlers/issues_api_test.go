package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/worstfriend/overseerr/config"
	"github.com/worstfriend/overseerr/models"
	"github.com/worstfriend/overseerr/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePageInfo(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		skip     int
		want     PageInfo
	}{
		{"empty", 0, 10, 0, PageInfo{Pages: 0, PageSize: 10, Results: 0, Page: 1}},
		{"exact single page", 10, 10, 0, PageInfo{Pages: 1, PageSize: 10, Results: 10, Page: 1}},
		{"partial last page", 25, 10, 0, PageInfo{Pages: 3, PageSize: 10, Results: 25, Page: 1}},
		{"second page", 25, 10, 10, PageInfo{Pages: 3, PageSize: 10, Results: 25, Page: 2}},
		{"mid-window skip", 25, 10, 15, PageInfo{Pages: 3, PageSize: 10, Results: 25, Page: 2}},
		{"small page size", 7, 3, 6, PageInfo{Pages: 3, PageSize: 3, Results: 7, Page: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, makePageInfo(tt.total, tt.pageSize, tt.skip))
		})
	}
}

func TestMakePageInfoCeilProperty(t *testing.T) {
	// pages == ceil(results/pageSize) and page == floor(skip/pageSize)+1
	for total := 0; total <= 50; total++ {
		for _, pageSize := range []int{1, 3, 10} {
			for skip := 0; skip <= total; skip += pageSize {
				info := makePageInfo(total, pageSize, skip)

				wantPages := (total + pageSize - 1) / pageSize
				assert.Equal(t, wantPages, info.Pages, "total=%d pageSize=%d", total, pageSize)
				assert.Equal(t, skip/pageSize+1, info.Page, "skip=%d pageSize=%d", skip, pageSize)
			}
		}
	}
}

func TestParseStatusToken(t *testing.T) {
	status, ok := parseStatusToken("resolved")
	require.True(t, ok)
	assert.Equal(t, models.IssueStatusResolved, status)

	status, ok = parseStatusToken("open")
	require.True(t, ok)
	assert.Equal(t, models.IssueStatusOpen, status)

	for _, token := range []string{"", "closed", "OPEN", "Resolved", "reopened"} {
		_, ok := parseStatusToken(token)
		assert.False(t, ok, "token %q should be rejected", token)
	}
}

func TestParsePositiveInt(t *testing.T) {
	assert.Equal(t, 10, parsePositiveInt("", 10))
	assert.Equal(t, 25, parsePositiveInt("25", 10))
	assert.Equal(t, 0, parsePositiveInt("0", 10))
	assert.Equal(t, 10, parsePositiveInt("-5", 10))
	assert.Equal(t, 10, parsePositiveInt("abc", 10))
}

func TestHandlersRejectMissingUser(t *testing.T) {
	services.InitSessionStore(config.Load())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		target  string
	}{
		{"list", ListIssuesHandler, http.MethodGet, "/api/v1/issue"},
		{"create", CreateIssueHandler, http.MethodPost, "/api/v1/issue"},
		{"get", GetIssueHandler, http.MethodGet, "/api/v1/issue/1"},
		{"comment", CreateIssueCommentHandler, http.MethodPost, "/api/v1/issue/1/comment"},
		{"status", UpdateIssueStatusHandler, http.MethodPost, "/api/v1/issue/1/resolved"},
		{"edit comment", UpdateIssueCommentHandler, http.MethodPut, "/api/v1/issueComment/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()

			tt.handler(rr, req)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Contains(t, rr.Body.String(), "User missing from request.")
		})
	}
}
