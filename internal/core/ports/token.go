package ports

// TokenVerifier checks a session token and extracts its subject claim. The
// token format and algorithm belong to the authentication collaborator; the
// session resolver only depends on this contract.
type TokenVerifier interface {
	// Verify returns the subject claim of a valid token. Any failure
	// (malformed token, bad signature, missing subject) returns an error.
	Verify(token string) (string, error)
}

// TokenIssuer mints a session token for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}
