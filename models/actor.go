package models

// Role is the role an authenticated actor holds in the product.
type Role string

const (
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleCoach, RoleAdmin, RoleClient:
		return true
	}
	return false
}

// Action is an operation an actor attempts against a note.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionShare   Action = "share"
	ActionUnshare Action = "unshare"
)

// Actions lists every action known to the access policy.
var Actions = []Action{ActionView, ActionEdit, ActionDelete, ActionShare, ActionUnshare}

// Actor identifies who performs a request. IP and UserAgent are recorded in
// the audit trail only.
type Actor struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
