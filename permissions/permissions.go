package permissions

// Permission is a capability bit held by a user. A user's permission set is the
// bitwise OR of every capability granted to them.
type Permission uint32

const (
	None           Permission = 0
	Admin          Permission = 1 << 1
	ManageSettings Permission = 1 << 2
	ManageUsers    Permission = 1 << 3
	ManageRequests Permission = 1 << 4
	Request        Permission = 1 << 5
	AutoApprove    Permission = 1 << 7
	ManageIssues   Permission = 1 << 20
	ViewIssues     Permission = 1 << 21
	CreateIssues   Permission = 1 << 22
)

// CheckMode selects how a multi-permission check composes.
type CheckMode string

const (
	CheckAnd CheckMode = "and"
	CheckOr  CheckMode = "or"
)

// HasPermission reports whether the held permission set satisfies the required
// permissions under the given mode. Admin satisfies any check.
func HasPermission(held Permission, required []Permission, mode CheckMode) bool {
	if held&Admin != 0 {
		return true
	}

	if len(required) == 0 {
		return true
	}

	switch mode {
	case CheckOr:
		for _, p := range required {
			if held&p != 0 {
				return true
			}
		}
		return false
	default:
		for _, p := range required {
			if held&p == 0 {
				return false
			}
		}
		return true
	}
}
