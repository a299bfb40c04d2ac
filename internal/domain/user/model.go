package user

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHeadScout Role = "head_scout"
	RoleScout     Role = "scout"
	RoleViewer    Role = "viewer"
)

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID string
	Email  string
	ClubID string
	Roles  []Role
}

func (p Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if strings.EqualFold(string(r), string(role)) {
			return true
		}
	}
	return false
}

// SeesWholeClub reports whether the caller may read every market of the club.
func (p Principal) SeesWholeClub() bool {
	return p.HasRole(RoleAdmin) || p.HasRole(RoleHeadScout)
}

// CanEdit is false for read-only viewers.
func (p Principal) CanEdit() bool {
	if p.SeesWholeClub() || p.HasRole(RoleScout) {
		return true
	}
	return !p.HasRole(RoleViewer)
}
