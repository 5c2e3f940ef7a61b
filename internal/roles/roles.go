// Package roles defines the platform's user roles and the comparison
// rules shared by the server middleware and the client shell.
package roles

import "strings"

// Role represents a user's role on the platform
type Role string

const (
	Admin   Role = "ADMIN"
	Faculty Role = "FACULTY"
	Student Role = "STUDENT"

	// Teacher is an accepted alias spelling of Faculty. Older deployments
	// issued tokens with role "TEACHER"; route guards must keep admitting it.
	Teacher Role = "TEACHER"
)

// Normalize upper-cases a role and folds the TEACHER alias into FACULTY.
// Use it for membership checks only; the raw spelling a user was issued
// with is preserved everywhere else.
func Normalize(r Role) Role {
	upper := Role(strings.ToUpper(strings.TrimSpace(string(r))))
	if upper == Teacher {
		return Faculty
	}
	return upper
}

// Member reports whether role matches any of the given roles,
// comparing case-insensitively and treating TEACHER and FACULTY as one.
func Member(role Role, set []Role) bool {
	normalized := Normalize(role)
	for _, candidate := range set {
		if Normalize(candidate) == normalized {
			return true
		}
	}
	return false
}

// Known reports whether r normalizes to one of the three platform roles.
func Known(r Role) bool {
	switch Normalize(r) {
	case Admin, Faculty, Student:
		return true
	}
	return false
}
