// Package routes defines the shell's route table and the access guard
// that gates every protected route against the current session.
package routes

import (
	"github.com/campusd-dev/campusd/internal/roles"
	"github.com/campusd-dev/campusd/internal/shell/session"
)

// Well-known paths
const (
	PathRoot             = "/"
	PathLogin            = "/login"
	PathRegister         = "/register"
	PathUnauthorized     = "/unauthorized"
	PathAdminDashboard   = "/admin/dashboard"
	PathTeacherDashboard = "/teacher/dashboard"
	PathStudentDashboard = "/student/dashboard"
)

// Route describes one entry point. An empty RequiredRoles set means any
// authenticated user may enter; a nil Public route requires no session.
type Route struct {
	Path          string
	Public        bool
	RequiredRoles []roles.Role
}

// table lists every route the shell knows. The teacher dashboard admits
// both the FACULTY and the legacy TEACHER spelling.
var table = []Route{
	{Path: PathLogin, Public: true},
	{Path: PathRegister, Public: true},
	{Path: PathUnauthorized, Public: true},
	{Path: PathAdminDashboard, RequiredRoles: []roles.Role{roles.Admin}},
	{Path: PathTeacherDashboard, RequiredRoles: []roles.Role{roles.Faculty, roles.Teacher}},
	{Path: PathStudentDashboard, RequiredRoles: []roles.Role{roles.Student}},
}

// Lookup resolves a path to its route descriptor. The root path aliases
// to login; unknown paths report ok=false (the not-found view).
func Lookup(path string) (Route, bool) {
	if path == PathRoot {
		path = PathLogin
	}
	for _, route := range table {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

// Action is the guard's verdict for a route entry.
type Action int

const (
	// ShowLoading renders a neutral placeholder while the session is
	// still hydrating.
	ShowLoading Action = iota
	Render
	RedirectLogin
	RedirectUnauthorized
)

// Decision is the guard's output: what to do, and where. For
// RedirectLogin, Intended carries the originally requested path so login
// can return the user there.
type Decision struct {
	Action   Action
	Target   string
	Intended string
}

// Evaluate decides whether the session may enter route. The order is
// fixed: an unauthenticated user is sent to login before any role check,
// even for roles they could never satisfy.
func Evaluate(snap session.Snapshot, route Route, from string) Decision {
	if route.Public {
		return Decision{Action: Render, Target: route.Path}
	}

	if snap.Initializing {
		return Decision{Action: ShowLoading}
	}

	if !snap.Authenticated {
		return Decision{Action: RedirectLogin, Target: PathLogin, Intended: from}
	}

	if len(route.RequiredRoles) > 0 && !roles.Member(snap.Role(), route.RequiredRoles) {
		return Decision{Action: RedirectUnauthorized, Target: PathUnauthorized}
	}

	return Decision{Action: Render, Target: route.Path}
}

// dashboards maps a normalized role to its default landing route.
var dashboards = map[roles.Role]string{
	roles.Admin:   PathAdminDashboard,
	roles.Faculty: PathTeacherDashboard,
	roles.Student: PathStudentDashboard,
}

// LoginRedirect picks the destination after a successful login: the
// intended path captured by the guard when it existed, otherwise the
// role's dashboard. Callers replace history so back-navigation does not
// return to the login view. Unknown roles land on the site root.
func LoginRedirect(intended string, role roles.Role) string {
	if intended != "" {
		return intended
	}
	if path, ok := dashboards[roles.Normalize(role)]; ok {
		return path
	}
	return PathRoot
}
