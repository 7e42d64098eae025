package middleware

// keys of values stored in context
type MiddleWareContextKey string

const (
	JWT_CLAIMS = MiddleWareContextKey("jwt_claims") // The context value is a map[string]any of the verified JWT claims.
	RAW_BODY   = MiddleWareContextKey("raw_body")   // The context value is the []byte of the webhook body as received.
)
