package domain

import "errors"

var (
	// ErrWeakPassword rejects passwords failing the composition policy.
	ErrWeakPassword = errors.New("password must be at least 10 characters long and include uppercase, lowercase, digit, and special character")
	// ErrInvalidPassword rejects empty or otherwise unusable plaintext input.
	ErrInvalidPassword = errors.New("invalid password input")
	// ErrUserExists signals an email collision at registration or creation.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot probe for account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated signals a missing or malformed bearer credential,
	// or a token whose subject no longer exists.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken is the single outward signal for every token
	// verification failure: malformed, bad signature, expired, wrong kind.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden signals a role or guard check failure.
	ErrForbidden = errors.New("access forbidden")
	// ErrUserNotFound signals an absent user record.
	ErrUserNotFound = errors.New("user not found")
)
