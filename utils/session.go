package utils

import (
	"github.com/gin-gonic/gin"
)

// Roles carried in session tokens.
const (
	RoleCitizen = "citizen"
	RoleOffice  = "office"
)

// SessionClaims is the identity attached to a request. SubmitterID is
// an opaque citizen identifier supplied at login and trusted verbatim.
type SessionClaims struct {
	SubmitterID string `json:"submitter_id"`
	Role        string `json:"role"`
}

type contextKey string

const SessionContextKey contextKey = "session"

func GetSession(c *gin.Context) *SessionClaims {
	session, exists := c.Get(string(SessionContextKey))
	if !exists {
		return nil
	}
	if claims, ok := session.(*SessionClaims); ok {
		return claims
	}
	return nil
}
