package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// GET /v1/admin/subadmins
func ListSubAdmins(c *gin.Context) {
	utils.LogInfo("ListSubAdmins called")

	var subadmins []models.Admin
	if err := config.DB.Where("role = ?", models.AdminRoleSubAdmin).
		Order("created_at DESC").Find(&subadmins).Error; err != nil {
		utils.LogError("Failed to list sub-admins: %v", err)
		utils.InternalServerError(c, "Failed to fetch sub-admins", err.Error())
		return
	}

	utils.Success(c, "Sub-admins retrieved successfully", gin.H{"subadmins": subadmins})
}

// POST /v1/admin/subadmins
func CreateSubAdmin(c *gin.Context) {
	utils.LogInfo("CreateSubAdmin called")

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}

	var existing models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Conflict(c, "An admin with this email already exists", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.InternalServerError(c, "Failed to create sub-admin", nil)
		return
	}

	subadmin := models.Admin{
		Email:    req.Email,
		Password: hashed,
		Role:     models.AdminRoleSubAdmin,
		IsActive: true,
	}
	if err := config.DB.Create(&subadmin).Error; err != nil {
		utils.LogError("Failed to create sub-admin %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create sub-admin", err.Error())
		return
	}

	utils.LogInfo("Created sub-admin %s", subadmin.Email)
	utils.Created(c, "Sub-admin created successfully", gin.H{
		"subadmin": gin.H{
			"id":    subadmin.ID,
			"email": subadmin.Email,
			"role":  subadmin.Role,
		},
	})
}

// PATCH /v1/admin/subadmins/:id/deactivate
func DeactivateSubAdmin(c *gin.Context) {
	utils.LogInfo("DeactivateSubAdmin called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid sub-admin ID format", nil)
		return
	}

	var subadmin models.Admin
	if err := config.DB.Where("id = ? AND role = ?", id, models.AdminRoleSubAdmin).First(&subadmin).Error; err != nil {
		utils.NotFound(c, "Sub-admin not found")
		return
	}

	if err := config.DB.Model(&subadmin).Update("is_active", false).Error; err != nil {
		utils.LogError("Failed to deactivate sub-admin %d: %v", subadmin.ID, err)
		utils.InternalServerError(c, "Failed to deactivate sub-admin", err.Error())
		return
	}

	utils.LogInfo("Deactivated sub-admin %d", subadmin.ID)
	utils.Success(c, "Sub-admin deactivated successfully", nil)
}
