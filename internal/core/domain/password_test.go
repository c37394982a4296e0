package domain

import "testing"

func TestPasswordPolicy_IsAcceptable(t *testing.T) {
	policy := NewPasswordPolicy(0)

	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "StrongPass#123", true},
		{"valid minimal length", "Aa1!aaaaaa", true},
		{"too short", "Aa1!aaaaa", false},
		{"missing lowercase", "AA1!AAAAAAAA", false},
		{"missing uppercase", "aa1!aaaaaaaa", false},
		{"missing digit", "Aa!!aaaaaaaa", false},
		{"missing symbol", "Aa11aaaaaaaa", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := policy.IsAcceptable(tc.password); got != tc.want {
				t.Fatalf("IsAcceptable(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestPasswordPolicy_ConfiguredMinimum(t *testing.T) {
	policy := NewPasswordPolicy(16)

	if policy.IsAcceptable("StrongPass#123") {
		t.Fatalf("expected 14-char password to fail a 16-char minimum")
	}
	if !policy.IsAcceptable("StrongPass#12345") {
		t.Fatalf("expected 16-char password to pass")
	}
}
