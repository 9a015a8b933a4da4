package middleware

import (
	"net/http"
	"strings"

	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthConfig struct {
	Secret string
}

// JWTAuth is the single gate in front of every protected route: it pulls
// the bearer token from the Authorization header, verifies signature and
// expiry, and attaches the decoded claims to the request context.
func JWTAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "no token provided", nil))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.ParseWithClaims(tokenStr, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !token.Valid {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}
