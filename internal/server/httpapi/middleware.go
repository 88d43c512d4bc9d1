package httpapi

import (
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestLogger tags the request with an id (reusing an inbound
// X-Request-ID) and logs one line once the handler chain is done. The query
// string is never logged because it may carry the token.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(common.RequestIDHeaderName, requestID)

		c.Next()

		args := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if id := auth.IdentityFromContext(c.Request.Context()); id != nil {
			args = append(args, "username", id.Username)
		}
		logger.Info(c.Request.Context(), "request", args...)
	}
}

// authenticate attaches the identity of a valid _token to the request
// context. It never aborts: an absent or bad token just leaves the request
// anonymous for the guards to reject.
func authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := tokens.Authenticate(c.Request.Context(), tokenFromRequest(c))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// tokenFromRequest looks at the query string first, then the body. JSON
// bodies are cached by gin so handlers can bind them again.
func tokenFromRequest(c *gin.Context) string {
	if token := c.Query(common.TokenParamName); token != "" {
		return token
	}

	switch c.ContentType() {
	case binding.MIMEJSON:
		var body struct {
			Token string `json:"_token"`
		}
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err == nil {
			return body.Token
		}
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		return c.PostForm(common.TokenParamName)
	}

	return ""
}
