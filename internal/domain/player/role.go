package player

import "strings"

var roleKeywords = []struct {
	keyword string
	role    Role
}{
	{keyword: "wicket", role: RoleWicketKeeper},
	{keyword: "all", role: RoleAllRounder},
	{keyword: "bowl", role: RoleBowler},
	{keyword: "bat", role: RoleBatsman},
}

// ClassifyRole maps free-text role descriptions such as "Batting Allrounder"
// to a Role. Keywords are checked in priority order, so text containing
// several of them resolves to the earliest one.
func ClassifyRole(raw string) Role {
	text := strings.ToLower(raw)
	for _, item := range roleKeywords {
		if strings.Contains(text, item.keyword) {
			return item.role
		}
	}
	return RoleOther
}

// ParseRole accepts a canonical role name, case-insensitively.
func ParseRole(raw string) (Role, bool) {
	value := strings.TrimSpace(raw)
	for role := range AllRoles {
		if strings.EqualFold(string(role), value) {
			return role, true
		}
	}
	return "", false
}
