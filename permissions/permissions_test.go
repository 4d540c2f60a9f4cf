package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermissionOr(t *testing.T) {
	tests := []struct {
		name     string
		held     Permission
		required []Permission
		want     bool
	}{
		{"single match", CreateIssues, []Permission{ManageIssues, CreateIssues}, true},
		{"no match", Request, []Permission{ManageIssues, ViewIssues, CreateIssues}, false},
		{"none held", None, []Permission{CreateIssues}, false},
		{"all match", ManageIssues | ViewIssues, []Permission{ManageIssues, ViewIssues}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.held, tt.required, CheckOr))
		})
	}
}

func TestHasPermissionAnd(t *testing.T) {
	tests := []struct {
		name     string
		held     Permission
		required []Permission
		want     bool
	}{
		{"all held", ManageIssues | ViewIssues, []Permission{ManageIssues, ViewIssues}, true},
		{"partial", ManageIssues, []Permission{ManageIssues, ViewIssues}, false},
		{"none held", None, []Permission{ManageIssues}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.held, tt.required, CheckAnd))
		})
	}
}

func TestHasPermissionAdminBypass(t *testing.T) {
	required := []Permission{ManageIssues, ViewIssues, CreateIssues}

	assert.True(t, HasPermission(Admin, required, CheckAnd))
	assert.True(t, HasPermission(Admin, required, CheckOr))
	assert.True(t, HasPermission(Admin|Request, []Permission{ManageSettings}, CheckAnd))
}

func TestHasPermissionEmptyRequired(t *testing.T) {
	assert.True(t, HasPermission(None, nil, CheckOr))
	assert.True(t, HasPermission(Request, []Permission{}, CheckAnd))
}
