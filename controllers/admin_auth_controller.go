package controllers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// AdminLogin authenticates an admin or sub-admin
func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Admin login attempt for email: %s", req.Email)

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin login failed - no account for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Admin login failed - wrong password for admin %d", admin.ID)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !admin.IsActive {
		utils.LogError("Login refused - inactive admin %d", admin.ID)
		utils.Forbidden(c, "Admin account is inactive")
		return
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to generate token for admin %d: %v", admin.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	config.DB.Model(&admin).Update("last_login", time.Now())

	utils.LogInfo("Admin %d logged in", admin.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// AdminLogout ends an admin session. Tokens are stateless, so this is
// for the client to discard its copy.
func AdminLogout(c *gin.Context) {
	utils.Success(c, "Logout successful", nil)
}

// CreateSampleAdmin seeds the first admin account from the environment
// when the table is empty.
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		email = "admin@quicktick.in"
		password = "Admin@1234"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:    email,
		Password: hashed,
		Role:     models.AdminRoleAdmin,
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded initial admin account: %s", email)
	return nil
}
