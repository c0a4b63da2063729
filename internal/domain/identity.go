package domain

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	ID    string
	Email string
}
