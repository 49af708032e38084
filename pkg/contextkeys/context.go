package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// IdentityContextKey holds the verified caller identity in gin context.
const IdentityContextKey = contextKey("identity")
