package models

import (
	"testing"

	"github.com/worstfriend/overseerr/permissions"

	"github.com/stretchr/testify/assert"
)

func TestUserHasPermission(t *testing.T) {
	reporter := &User{Permissions: permissions.CreateIssues}
	staff := &User{Permissions: permissions.ManageIssues | permissions.ViewIssues}
	admin := &User{IsAdmin: true}

	issueViewers := []permissions.Permission{
		permissions.ManageIssues,
		permissions.ViewIssues,
		permissions.CreateIssues,
	}

	assert.True(t, reporter.HasPermission(issueViewers, permissions.CheckOr))
	assert.False(t, reporter.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr))

	assert.True(t, staff.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr))

	// Legacy admin flag folds into the permission set
	assert.True(t, admin.HasPermission([]permissions.Permission{permissions.ManageIssues}, permissions.CheckOr))
	assert.Equal(t, permissions.Admin, admin.EffectivePermissions())
}
