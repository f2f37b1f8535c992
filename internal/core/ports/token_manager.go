package ports

// Identity is the authenticated subject carried by a verified token.
type Identity struct {
	Username string
	Role     string
}

// TokenIssuer mints a signed, expiring bearer token for an identity.
type TokenIssuer interface {
	Issue(username, role string) (string, error)
}

// TokenVerifier checks a bearer token's signature and expiry. It returns
// domain.ErrTokenExpired for an expired token and domain.ErrInvalidToken
// for anything tampered, malformed, or signed with the wrong method.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// TokenManager combines issuing and verification behind one secret.
type TokenManager interface {
	TokenIssuer
	TokenVerifier
}
