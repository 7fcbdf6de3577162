package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/logger"
	"hotel-dashboard/session"
	"hotel-dashboard/utils"
)

const sessionKey = "operator_session"

// RequireSession builds the operator session from the Authorization header
// and aborts with 401 before any handler runs when the token is missing,
// malformed or expired. Handlers receive an explicit session, never ambient
// state.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := session.FromBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session placed on the context by RequireSession.
func SessionFrom(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

// RequestLogger logs every request with a generated request id. The id is
// echoed in the X-Request-ID response header for correlation.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := logger.NewRequestID()
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		log := logger.WithRequestID(requestID)
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				fields = append(fields, "error", c.Errors.String())
			}
			log.Error("request failed", fields...)
			return
		}
		log.Info("request completed", fields...)
	}
}

// Recovery converts panics into a 500 with a structured log entry.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		)
		if !c.Writer.Written() {
			utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		}
	})
}
