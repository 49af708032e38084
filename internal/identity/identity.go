package identity

// Identity is the authenticated caller extracted from a bearer token.
// Subject matches users.id.
type Identity struct {
	Subject string
	Email   string
}

// Verifier validates a raw bearer token and returns the caller identity.
type Verifier interface {
	Verify(token string) (*Identity, error)
}
