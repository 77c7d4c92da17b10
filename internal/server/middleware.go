package server

import (
	"net/http"
	"strings"
	"time"

	"auction-client/services/gateway/helpers"
	"auction-client/services/gateway/store"
	"auction-client/utils"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer token to its user
type Authenticator interface {
	Authenticate(token string) (store.User, error)
}

const requestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware logs incoming requests with timing. Requests without a
// well-formed X-Request-ID get a fresh one, echoed in the response.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if !utils.IsID(requestID) {
		requestID = utils.GenerateID()
	}
	c.Header(requestIDHeader, requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": requestID,
	})
}

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the user to the context otherwise
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
			utils.Debug("AuthMiddleware: missing bearer token", map[string]any{"path": c.Request.URL.Path})
			return
		}

		user, err := auth.Authenticate(token)
		if err != nil {
			helpers.HandleServiceError(c, "AuthMiddleware", err, map[string]any{"path": c.Request.URL.Path})
			return
		}

		c.Set(helpers.UserKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
