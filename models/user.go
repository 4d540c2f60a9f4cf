package models

import (
	"time"

	"github.com/worstfriend/overseerr/permissions"
)

type User struct {
	ID           int64                  `json:"id"`
	Username     string                 `json:"displayName"`
	Email        string                 `json:"email"`
	PasswordHash string                 `json:"-"`
	IsAdmin      bool                   `json:"-"`
	Permissions  permissions.Permission `json:"permissions"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// EffectivePermissions folds the legacy is_admin flag into the permission set.
func (u *User) EffectivePermissions() permissions.Permission {
	if u.IsAdmin {
		return u.Permissions | permissions.Admin
	}
	return u.Permissions
}

// HasPermission checks the user's permission set against the required set.
func (u *User) HasPermission(required []permissions.Permission, mode permissions.CheckMode) bool {
	return permissions.HasPermission(u.EffectivePermissions(), required, mode)
}
