package ports

// TokenIssuer creates and verifies signed, time-limited access and refresh
// tokens. Access and refresh tokens are never interchangeable: each Verify
// method rejects the other kind with domain.ErrInvalidToken.
type TokenIssuer interface {
	IssueAccessToken(userID string) (string, error)
	IssueRefreshToken(userID string) (string, error)
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}
