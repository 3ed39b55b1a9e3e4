package v1

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-services/internal/services"
)

const (
	usernameCtxKey  = "username"
	requestIDCtxKey = "request_id"
)

const requestIDHeader = "X-Request-ID"

// HandleAuthMiddleware rejects requests that present no token with 401 and
// requests whose token fails verification with 403. Otherwise the verified
// username is stored in the context under usernameCtxKey.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		h.logger.Error().Msg("authorization token required")
		abort(c, newUnauthorizedError(msgAuthorizationMissing))
		return
	}

	identity, err := h.tokens.Verify(token)
	if err != nil {
		event := h.logger.Error()
		if errors.Is(err, services.ErrTokenExpired) {
			event = h.logger.Warn()
		}
		event.Err(err).Msg("failed to verify token")
		abort(c, newForbiddenError(msgForbidden))
		return
	}

	c.Set(usernameCtxKey, identity.Username)
	c.Next()
}

// bearerToken returns the second space-separated segment of the header.
// Only a header without such a segment counts as presenting no token; any
// other value, whatever its scheme, is handed to verification.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// UsernameFromContext returns the identity attached by the auth middleware.
func UsernameFromContext(c *gin.Context) (string, bool) {
	return getStringFromContext(c, usernameCtxKey)
}

func getStringFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok && str != ""
}

// RequestID tags every request with an id, reusing the client's one if sent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDCtxKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one access log line per request. The Authorization
// header is never logged.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID, _ := getStringFromContext(c, requestIDCtxKey)
		event := logger.Info()
		if c.Writer.Status() >= 500 {
			event = logger.Error()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("handled request")
	}
}
