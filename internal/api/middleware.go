package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"
)

// RequestIDHeader is the header used to propagate request identifiers.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware creates a Gin middleware that tags every request with an
// identifier. An identifier supplied by the caller is reused, otherwise a new
// one is generated. The identifier is echoed back in the response headers and
// stored in the context for downstream handlers.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		// Set the identifier in the context for downstream handlers
		c.Set(ContextRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// Continue to the next handler
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper to return a JSON error response that also carries the underlying cause
func abortWithErrorDetails(c *gin.Context, code int, message string, cause error) {
	c.AbortWithStatusJSON(code, gin.H{"error": message, "details": cause.Error()})
}

// Helper function to get the request ID from context (used by handlers)
func getRequestIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return "", errors.New("request ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid request ID type in context")
	}
	return idStr, nil
}
