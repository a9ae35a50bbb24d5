package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// GET /v1/vendor/profile
func GetVendorProfile(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var vendor models.Vendor
	if err := config.DB.Preload("Products").First(&vendor, vendorID).Error; err != nil {
		utils.LogError("Vendor profile not found: %d", vendorID)
		utils.NotFound(c, "Vendor not found")
		return
	}

	utils.Success(c, "Vendor profile retrieved", gin.H{"vendor": vendor})
}

// VendorProfileUpdateRequest carries the fields a vendor may edit.
// Email, plan and status stay under admin/payment control.
type VendorProfileUpdateRequest struct {
	OwnerName        *string  `json:"owner_name"`
	MobileNumber     *string  `json:"mobile_number"`
	AlternateNumber  *string  `json:"alternate_number"`
	GSTNumber        *string  `json:"gst_number"`
	Address          *string  `json:"address"`
	City             *string  `json:"city"`
	State            *string  `json:"state"`
	Pincode          *string  `json:"pincode"`
	CompanyName      *string  `json:"company_name"`
	CompanyLogo      *string  `json:"company_logo"`
	Website          *string  `json:"website"`
	Sector           *string  `json:"sector"`
	BusinessType     *string  `json:"business_type"`
	BusinessKeywords *string  `json:"business_keywords"`
	MediaFiles       []string `json:"media_files"`
	VideoFiles       []string `json:"video_files"`
}

// PUT /v1/vendor/profile
func UpdateVendorProfile(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		utils.NotFound(c, "Vendor not found")
		return
	}

	var req VendorProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if req.MobileNumber != nil {
		valid, formatted := utils.ValidatePhone(*req.MobileNumber)
		if !valid {
			utils.BadRequest(c, "Invalid mobile number", formatted)
			return
		}
		vendor.MobileNumber = formatted
	}
	if req.Pincode != nil && *req.Pincode != "" {
		if valid, msg := utils.ValidatePincode(*req.Pincode); !valid {
			utils.BadRequest(c, "Invalid pincode", msg)
			return
		}
		vendor.Pincode = *req.Pincode
	}

	if req.OwnerName != nil {
		vendor.OwnerName = utils.SanitizeString(*req.OwnerName)
	}
	if req.AlternateNumber != nil {
		vendor.AlternateNumber = *req.AlternateNumber
	}
	if req.GSTNumber != nil {
		vendor.GSTNumber = *req.GSTNumber
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.City != nil {
		vendor.City = *req.City
	}
	if req.State != nil {
		vendor.State = *req.State
	}
	if req.CompanyName != nil {
		vendor.CompanyName = utils.SanitizeString(*req.CompanyName)
	}
	if req.CompanyLogo != nil {
		vendor.CompanyLogo = *req.CompanyLogo
	}
	if req.Website != nil {
		vendor.Website = *req.Website
	}
	if req.Sector != nil {
		vendor.Sector = *req.Sector
	}
	if req.BusinessType != nil {
		vendor.BusinessType = *req.BusinessType
	}
	if req.BusinessKeywords != nil {
		vendor.BusinessKeywords = *req.BusinessKeywords
	}
	if req.MediaFiles != nil {
		vendor.MediaFiles = models.StringList(req.MediaFiles)
	}
	if req.VideoFiles != nil {
		vendor.VideoFiles = models.StringList(req.VideoFiles)
	}

	if err := config.DB.Save(&vendor).Error; err != nil {
		utils.LogError("Failed to update vendor %d: %v", vendorID, err)
		utils.InternalServerError(c, "Failed to update profile", err.Error())
		return
	}

	utils.LogInfo("Vendor %d updated profile", vendorID)
	utils.Success(c, "Profile updated", gin.H{"vendor": vendor})
}

// GET /v1/admin/vendors
// Admin listing with optional status filter and search over company,
// owner and email.
func GetVendors(c *gin.Context) {
	pagination := utils.NewPagination(c)
	status := c.Query("status")
	search := utils.SanitizeString(c.Query("search"))

	query := config.DB.Model(&models.Vendor{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("company_name LIKE ? OR owner_name LIKE ? OR email LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count vendors: %v", err)
		utils.InternalServerError(c, "Failed to fetch vendors", err.Error())
		return
	}

	var vendors []models.Vendor
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&vendors).Error; err != nil {
		utils.LogError("Failed to fetch vendors: %v", err)
		utils.InternalServerError(c, "Failed to fetch vendors", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Vendors retrieved", gin.H{"vendors": vendors}, pagination)
}

// PUT /v1/admin/vendors/:id/status
// Moves a vendor between pending, approved and rejected.
func UpdateVendorStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	switch req.Status {
	case models.VendorStatusPending, models.VendorStatusApproved, models.VendorStatusRejected:
	default:
		utils.BadRequest(c, "Invalid status", "status must be pending, approved or rejected")
		return
	}

	var vendor models.Vendor
	if err := config.DB.First(&vendor, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Vendor not found")
		return
	}

	vendor.Status = req.Status
	if err := config.DB.Save(&vendor).Error; err != nil {
		utils.LogError("Failed to update vendor %d status: %v", vendor.ID, err)
		utils.InternalServerError(c, "Failed to update vendor status", err.Error())
		return
	}

	utils.LogInfo("Vendor %d status set to %s", vendor.ID, req.Status)
	utils.Success(c, "Vendor status updated", gin.H{
		"vendor": gin.H{"id": vendor.ID, "email": vendor.Email, "status": vendor.Status},
	})
}
