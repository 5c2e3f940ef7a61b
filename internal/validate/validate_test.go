package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"student.name@campus.edu",
		"x@sub.domain.org",
	}
	for _, s := range valid {
		if !Email(s) {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"plain",
		"@b.com",
		"a@",
		"a@b",
		"a@.com",
		"a@b.",
		"a b@c.com",
		"a@b@c.com",
	}
	for _, s := range invalid {
		if Email(s) {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"secret1", true},
		{"abc123", true},
		{"A1b2C3", true},
		{"", false},
		{"abc12", false},    // too short
		{"abcdef", false},   // no digit
		{"123456", false},   // no letter
		{"abc123!", false},  // symbol not allowed
		{"abc 123", false},  // space not allowed
		{"pass1word", true},
	}
	for _, tc := range cases {
		if got := Password(tc.in); got != tc.want {
			t.Errorf("Password(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	if Identifier("ab") {
		t.Error("Identifier(\"ab\") = true, want false (length 2)")
	}
	if !Identifier("abc1") {
		t.Error("Identifier(\"abc1\") = false, want true")
	}
	if Identifier("ab-1") {
		t.Error("Identifier(\"ab-1\") = true, want false (hyphen not allowed)")
	}
	if !Identifier("202400123") {
		t.Error("Identifier(\"202400123\") = false, want true")
	}
}

func TestMatch(t *testing.T) {
	if !Match("secret1", "secret1") {
		t.Error("Match should be reflexive")
	}
	if Match("secret1", "secret2") {
		t.Error("Match on different strings should be false")
	}
	// Symmetric
	if Match("a", "b") != Match("b", "a") {
		t.Error("Match should be symmetric")
	}
}

func TestFormValidator_LoginForm(t *testing.T) {
	v := NewFormValidator()

	errs := v.Check(LoginForm{Email: "a@b.com", Password: "secret1"})
	if len(errs) != 0 {
		t.Errorf("valid login form should have no errors, got %v", errs)
	}

	errs = v.Check(LoginForm{Email: "not-an-email", Password: "short"})
	if _, ok := errs["Email"]; !ok {
		t.Error("expected Email error")
	}
	if _, ok := errs["Password"]; !ok {
		t.Error("expected Password error")
	}
}

func TestFormValidator_RegisterForm(t *testing.T) {
	v := NewFormValidator()

	form := RegisterForm{
		FullName:        "Ada Lovelace",
		Email:           "ada@campus.edu",
		EnrollmentID:    "STU001",
		Department:      "Mathematics",
		Role:            "STUDENT",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if errs := v.Check(form); len(errs) != 0 {
		t.Errorf("valid register form should have no errors, got %v", errs)
	}

	form.ConfirmPassword = "secret2"
	errs := v.Check(form)
	if _, ok := errs["ConfirmPassword"]; !ok {
		t.Error("expected ConfirmPassword mismatch error")
	}

	form.ConfirmPassword = "secret1"
	form.EnrollmentID = "ab"
	errs = v.Check(form)
	if _, ok := errs["EnrollmentID"]; !ok {
		t.Error("expected EnrollmentID error for 2-char id")
	}
}
