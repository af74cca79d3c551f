package delivery

import "strings"

// Actor is the caller on whose behalf a status change is made. Identity is
// established upstream; the engine only records it and checks the role.
type Actor struct {
	ID   string
	Name string
	Role string
}

// SystemActor is recorded for changes made by the engine itself.
var SystemActor = Actor{ID: "system", Name: "system", Role: "system"}

// IsPrivileged is true for administrative roles allowed to force transitions.
func (a Actor) IsPrivileged() bool {
	switch strings.ToLower(a.Role) {
	case "admin", "staff":
		return true
	default:
		return false
	}
}
