package utils

// ContextKey types request-scoped context values so gin's string keys
// cannot collide with other packages'.
type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
)
