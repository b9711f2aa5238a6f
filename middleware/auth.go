package middleware

import (
	"net/http"
	"strings"

	"github.com/fixmycity/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware parses the bearer session token and attaches its
// claims to the request context.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		submitterID, _ := claims["submitter_id"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set(string(utils.SessionContextKey), &utils.SessionClaims{
			SubmitterID: submitterID,
			Role:        role,
		})

		c.Next()
	}
}

// OfficeOnly rejects requests whose session is not an office session.
func OfficeOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := utils.GetSession(c)
		if session == nil || session.Role != utils.RoleOffice {
			c.JSON(http.StatusForbidden, gin.H{"error": "Office access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
