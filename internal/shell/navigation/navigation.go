// Package navigation maps a user's role to the menu entries they may
// see. Resolution is deterministic and side-effect free: it runs on
// every render.
package navigation

import (
	"github.com/campusd-dev/campusd/internal/roles"
	"github.com/campusd-dev/campusd/internal/shell/routes"
)

// Entry is a single menu item. Order within the resolved list is display
// order.
type Entry struct {
	Label string
	Path  string
	Icon  string
	Badge string
}

// Per-role entry sets. Each list is static; the dashboard entry is
// prepended by Resolve so it always comes first.
var (
	adminEntries = []Entry{
		{Label: "User Management", Path: "/admin/users", Icon: "users"},
		{Label: "Courses", Path: "/admin/courses", Icon: "book"},
		{Label: "Departments", Path: "/admin/departments", Icon: "building"},
		{Label: "Reports", Path: "/admin/reports", Icon: "chart"},
		{Label: "Settings", Path: "/admin/settings", Icon: "gear"},
	}

	facultyEntries = []Entry{
		{Label: "My Courses", Path: "/teacher/courses", Icon: "book"},
		{Label: "Gradebook", Path: "/teacher/gradebook", Icon: "pencil"},
		{Label: "Attendance", Path: "/teacher/attendance", Icon: "check"},
		{Label: "Timetable", Path: "/teacher/timetable", Icon: "calendar"},
	}

	studentEntries = []Entry{
		{Label: "My Courses", Path: "/student/courses", Icon: "book"},
		{Label: "Grades", Path: "/student/grades", Icon: "star"},
		{Label: "Timetable", Path: "/student/timetable", Icon: "calendar"},
		{Label: "Fees", Path: "/student/fees", Icon: "wallet", Badge: "due"},
	}
)

// Resolve returns the ordered menu for a role. The role-specific
// dashboard is always first; an unrecognized or empty role yields an
// empty menu.
func Resolve(role roles.Role) []Entry {
	var dashboard Entry
	var rest []Entry

	switch roles.Normalize(role) {
	case roles.Admin:
		dashboard = Entry{Label: "Dashboard", Path: routes.PathAdminDashboard, Icon: "home"}
		rest = adminEntries
	case roles.Faculty:
		dashboard = Entry{Label: "Dashboard", Path: routes.PathTeacherDashboard, Icon: "home"}
		rest = facultyEntries
	case roles.Student:
		dashboard = Entry{Label: "Dashboard", Path: routes.PathStudentDashboard, Icon: "home"}
		rest = studentEntries
	default:
		return []Entry{}
	}

	menu := make([]Entry, 0, len(rest)+1)
	menu = append(menu, dashboard)
	menu = append(menu, rest...)
	return menu
}
