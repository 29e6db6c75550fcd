package handlers

import (
	"errors"
	"net/http"

	"quadrafacil/services/fault"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service failures into HTTP responses. Business-rule
// faults map to client statuses with their reason; anything else is a 500.
func (h *HandlerBundle) respondError(c *gin.Context, err error) {
	var fe *fault.Error
	if errors.As(err, &fe) {
		c.JSON(statusFor(fe.Kind), gin.H{"error": fe.Reason})
		return
	}
	h.Logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func statusFor(kind fault.Kind) int {
	switch kind {
	case fault.KindUnauthenticated:
		return http.StatusUnauthorized
	case fault.KindForbidden:
		return http.StatusForbidden
	case fault.KindNotFound:
		return http.StatusNotFound
	case fault.KindConflict:
		return http.StatusConflict
	case fault.KindInvalidState, fault.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// callerID returns the authenticated user's ID set by the auth middleware.
func callerID(c *gin.Context) string {
	return c.GetString("userID")
}

// firstQuery returns the first non-empty value among the given query keys.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
