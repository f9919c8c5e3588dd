package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jmathewk/PromoDeck/config"
	"github.com/jmathewk/PromoDeck/utils"
)

// AuthController authenticates the configured admin identity
type AuthController struct {
	Config *config.Config
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles admin authentication. The response never distinguishes a bad
// username from a bad password.
func (ac *AuthController) Login(c *gin.Context) {
	utils.LogInfo("Login called")
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Missing credentials.")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.BadRequest(c, "Missing credentials.")
		return
	}

	if !utils.VerifyCredentials(req.Username, req.Password, ac.Config.AdminUsername, ac.Config.AdminPasswordHash) {
		utils.LogError("Failed admin login attempt for username %q", req.Username)
		utils.Unauthorized(c, "Invalid credentials.")
		return
	}

	token, err := utils.GenerateAdminToken(req.Username, ac.Config.JWTSecret)
	if err != nil {
		utils.LogError("Failed to sign admin token: %v", err)
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	utils.LogInfo("Admin login successful")
	utils.OK(c, gin.H{"token": token})
}
