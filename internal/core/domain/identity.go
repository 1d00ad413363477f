package domain

// AuthorityPrefix is prepended to the role when deriving an authority string.
const AuthorityPrefix = "ROLE_"

// Identity is the resolved view of a user sufficient for authorization
// decisions: the username (the email), the stored password hash, and exactly
// one authority derived from the role.
type Identity struct {
	Username     string
	PasswordHash string
	Authority    string
}

// NewIdentity builds the identity view of a user.
func NewIdentity(u *User) *Identity {
	return &Identity{
		Username:     u.Email,
		PasswordHash: u.PasswordHash,
		Authority:    AuthorityPrefix + string(u.Role),
	}
}
