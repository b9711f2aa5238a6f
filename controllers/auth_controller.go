package controllers

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/fixmycity/api-go/config"
	"github.com/fixmycity/api-go/utils"
)

// AuthController issues session tokens. There is no account system:
// citizens log in with a bare identifier (aadhaar number in the
// original deployment) which is trusted verbatim; office staff log in
// with a shared secret.
type AuthController struct {
	Config *config.Config
}

type LoginRequest struct {
	SubmitterID string `json:"submitter_id"`
}

type OfficeLoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Config: cfg}
}

// Login issues a citizen session for the supplied submitter id.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.SubmitterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submitter_id is required"})
		return
	}

	token, err := ac.signToken(req.SubmitterID, utils.RoleCitizen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    LoginResponse{Token: token, Role: utils.RoleCitizen},
	})
}

// OfficeLogin issues an office session when the shared secret matches.
func (ac *AuthController) OfficeLogin(c *gin.Context) {
	var req OfficeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Secret != ac.Config.OfficeSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid office secret"})
		return
	}

	token, err := ac.signToken("", utils.RoleOffice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    LoginResponse{Token: token, Role: utils.RoleOffice},
	})
}

func (ac *AuthController) signToken(submitterID, role string) (string, error) {
	claims := jwt.MapClaims{
		"submitter_id": submitterID,
		"role":         role,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.Config.SessionSecret))
}
