package common

// TokenParamName is the query parameter, body field and gRPC metadata key
// carrying the identity token on inbound requests.
const TokenParamName = "_token"

// RequestIDHeaderName is echoed back on every HTTP response.
const RequestIDHeaderName = "X-Request-ID"
