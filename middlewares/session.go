package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brasacombo/storefront-app/utils"
)

// SessionMiddleware resolves the anonymous session token and exposes the
// session key to handlers. Cart, checkout and order routes all require it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("sessão não encontrada"))
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("sessão inválida ou expirada"))
			c.Abort()
			return
		}

		c.Set("session_key", claims.SessionKey)
		c.Next()
	}
}

// SessionKey reads the session key set by SessionMiddleware.
func SessionKey(c *gin.Context) string {
	return c.GetString("session_key")
}
