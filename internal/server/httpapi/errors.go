package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// respondError sends unified error payload {"error": {"code", "message"}}.
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// fail maps a domain error onto its HTTP status. Anything unrecognised is
// logged and reported as 500 without details.
func (s *HTTPServer) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		respondError(c, http.StatusBadRequest, "ALREADY_EXISTS", "username is taken")
	case errors.Is(err, common.ErrorBadRequest):
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", "bad request")
	default:
		s.logger.Error(c.Request.Context(), "request failed", "request_id", c.GetString(requestIDKey), "error", err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error")
	}
}

// bindBody decodes a JSON or form body into obj and runs its binding
// validations. Any failure is common.ErrorBadRequest.
func bindBody(c *gin.Context, obj any) error {
	var err error
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		err = c.ShouldBindWith(obj, binding.Form)
	default:
		err = c.ShouldBindBodyWith(obj, binding.JSON)
	}
	if err != nil {
		return common.ErrorBadRequest
	}
	return nil
}
