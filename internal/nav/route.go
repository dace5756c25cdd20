package nav

// Role classifies how a route is presented in the tab bar. Exactly one
// registered route carries RolePrimary; it gets the elevated treatment.
type Role int

const (
	RoleStandard Role = iota
	RolePrimary
)

// Route is one tab destination. Routes are created at registration time
// and never mutated afterwards; the tab bar only ever reads them.
type Route struct {
	Key    string
	Title  string
	Icon   string
	Role   Role
	Params map[string]string
}
