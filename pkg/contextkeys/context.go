package contextkeys

// ContextKey is the type used for values placed into request contexts.
type ContextKey string

const (
	// IdentityKey holds the authenticated *auth.Identity, set by the auth
	// middleware and read by role gates and handlers.
	IdentityKey ContextKey = "identity"
)
