package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/merch-checkout/internal/pkg/jwt"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
)

// NewAuthMiddleware resolves the buyer id from a bearer token and stores it under jwt.UserIDContextKey.
func NewAuthMiddleware(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			writeError(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(c, http.StatusUnauthorized, "invalid auth header")
			return
		}

		claims, err := tokenParser.ParseToken([]byte(secretKey), parts[1])
		if err != nil {
			logger.Warn("failed to parse user token", "error", err.Error())
			writeError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(jwt.UserIDContextKey, claims.UserID)
		c.Next()
	}
}

func userIDFromContext(c *gin.Context) (int, bool) {
	value, ok := c.Get(jwt.UserIDContextKey)
	if !ok {
		return 0, false
	}

	userID, ok := value.(int)
	return userID, ok
}
