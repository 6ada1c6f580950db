package models

// Role is the closed set of account roles. Authorization is a plain
// membership test against a per-route allow-list; no role implies another.
type Role string

const (
	RoleUser       Role = "user"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// AllRoles lists every known role, for routes open to any signed-in account.
var AllRoles = []Role{RoleUser, RoleConsultant, RoleAdmin, RoleSuperadmin}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleConsultant, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole maps a raw string onto the enumeration, rejecting unknown values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
