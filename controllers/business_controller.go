package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// BusinessRequest is the free-listing submission payload.
type BusinessRequest struct {
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	AltPhone         string `json:"alt_phone"`
	Email            string `json:"email"`
	Category         string `json:"category"`
	City             string `json:"city"`
	PinCode          string `json:"pin_code"`
	PreferredAddress string `json:"preferred_address"`
	BusinessDetails  string `json:"business_details"`
	LogoURL          string `json:"logo_url"`
}

// POST /v1/businesses
// Open submission into the free business directory.
func CreateBusiness(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	valid, formatted := utils.ValidatePhone(req.Phone)
	if !valid {
		utils.BadRequest(c, "Invalid phone number", formatted)
		return
	}
	req.Phone = formatted

	if req.Email != "" {
		if valid, msg := utils.ValidateEmail(req.Email); !valid {
			utils.BadRequest(c, "Invalid email", msg)
			return
		}
	}
	if req.PinCode != "" {
		if valid, msg := utils.ValidatePincode(req.PinCode); !valid {
			utils.BadRequest(c, "Invalid pin code", msg)
			return
		}
	}

	business := models.Business{
		Name:             utils.SanitizeString(req.Name),
		Phone:            req.Phone,
		AltPhone:         req.AltPhone,
		Email:            req.Email,
		Category:         utils.SanitizeString(req.Category),
		City:             utils.SanitizeString(req.City),
		PinCode:          req.PinCode,
		PreferredAddress: utils.SanitizeString(req.PreferredAddress),
		BusinessDetails:  utils.SanitizeString(req.BusinessDetails),
		LogoURL:          req.LogoURL,
	}
	if err := config.DB.Create(&business).Error; err != nil {
		utils.LogError("Failed to create business listing: %v", err)
		utils.InternalServerError(c, "Failed to create listing", err.Error())
		return
	}

	utils.LogInfo("Created business listing %d (%s)", business.ID, business.Name)
	utils.Created(c, "Listing submitted", gin.H{"business": business})
}

// GET /v1/businesses
// Public directory with optional category/city filters.
func ListBusinesses(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Business{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city = ?", city)
	}
	if search := utils.SanitizeString(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR business_details LIKE ?", like, like)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count businesses: %v", err)
		utils.InternalServerError(c, "Failed to fetch listings", err.Error())
		return
	}

	var businesses []models.Business
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&businesses).Error; err != nil {
		utils.LogError("Failed to fetch businesses: %v", err)
		utils.InternalServerError(c, "Failed to fetch listings", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Listings retrieved", gin.H{"businesses": businesses}, pagination)
}

// DELETE /v1/admin/businesses/:id
func DeleteBusiness(c *gin.Context) {
	var business models.Business
	if err := config.DB.First(&business, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Listing not found")
		return
	}

	if err := config.DB.Delete(&business).Error; err != nil {
		utils.LogError("Failed to delete business %d: %v", business.ID, err)
		utils.InternalServerError(c, "Failed to delete listing", err.Error())
		return
	}

	utils.LogInfo("Deleted business listing %d", business.ID)
	utils.Success(c, "Listing deleted", nil)
}
