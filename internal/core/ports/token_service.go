package ports

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue returns a compact signed token carrying the subject and role claims.
	Issue(subject, role string) (string, error)
	// ExtractSubject verifies the signature and returns the subject claim.
	// Malformed or badly signed tokens fail with domain.ErrAuthenticationFailed.
	ExtractSubject(token string) (string, error)
	// IsValid reports whether a well-formed token matches expectedSubject and
	// has not expired. Anything malformed fails with domain.ErrAuthenticationFailed
	// rather than returning false.
	IsValid(token, expectedSubject string) (bool, error)
}
