package domain

import "unicode"

const defaultMinPasswordLength = 10

// PasswordPolicy validates password strength by a fixed composition rule:
// minimum length plus at least one lowercase letter, one uppercase letter,
// one digit, and one symbol.
type PasswordPolicy struct {
	MinLength int
}

// NewPasswordPolicy returns a policy with the given minimum length.
// Non-positive values fall back to the default of 10.
func NewPasswordPolicy(minLength int) PasswordPolicy {
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	return PasswordPolicy{MinLength: minLength}
}

// IsAcceptable reports whether password satisfies the policy. Pure function,
// no I/O; runs before any hashing or persistence attempt.
func (p PasswordPolicy) IsAcceptable(password string) bool {
	minLength := p.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	if len(password) < minLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
