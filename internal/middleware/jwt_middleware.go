package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/farellandr/ticketservice/internal/helpers"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthMiddleware requires an HS256 bearer token and exposes its
// account_id claim to handlers as "account_id" (int64). Claims are decoded as
// json.Number so ids above 2^53 keep their exact value.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authorization token required.")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithJSONNumber())
		if err != nil || !token.Valid {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		number, ok := claims["account_id"].(json.Number)
		if !ok {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token has no account.")
			c.Abort()
			return
		}
		accountID, err := number.Int64()
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Token has no account.")
			c.Abort()
			return
		}

		c.Set("account_id", accountID)
		c.Next()
	}
}
