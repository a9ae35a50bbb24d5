package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// EnquiryRequest is the contact-form payload.
type EnquiryRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Message      string `json:"message" binding:"required"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// POST /v1/enquiries
// Open endpoint; a signed-in caller gets the enquiry linked to their
// account. The support mailbox is notified best-effort.
func CreateEnquiry(c *gin.Context) {
	var req EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if req.Phone != "" {
		valid, formatted := utils.ValidatePhone(req.Phone)
		if !valid {
			utils.BadRequest(c, "Invalid phone number", formatted)
			return
		}
		req.Phone = formatted
	}

	enquiry := models.Enquiry{
		Name:         utils.SanitizeString(req.Name),
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      utils.SanitizeString(req.Message),
		IsSubscribed: req.IsSubscribed,
	}
	if userID := c.GetUint("user_id"); userID != 0 {
		enquiry.UserID = &userID
	}

	if err := config.DB.Create(&enquiry).Error; err != nil {
		utils.LogError("Failed to create enquiry: %v", err)
		utils.InternalServerError(c, "Failed to submit enquiry", err.Error())
		return
	}

	// Notification failures must not fail the submission.
	if err := utils.NotifyEnquiry(enquiry.Name, enquiry.Email, enquiry.Message); err != nil {
		utils.LogError("Failed to send enquiry notification for %d: %v", enquiry.ID, err)
	}

	utils.LogInfo("Created enquiry %d from %s", enquiry.ID, enquiry.Email)
	utils.Created(c, "Enquiry submitted", gin.H{"enquiry": enquiry})
}

// GET /v1/admin/enquiries
func ListEnquiries(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Enquiry{})
	if search := utils.SanitizeString(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count enquiries: %v", err)
		utils.InternalServerError(c, "Failed to fetch enquiries", err.Error())
		return
	}

	var enquiries []models.Enquiry
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&enquiries).Error; err != nil {
		utils.LogError("Failed to fetch enquiries: %v", err)
		utils.InternalServerError(c, "Failed to fetch enquiries", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Enquiries retrieved", gin.H{"enquiries": enquiries}, pagination)
}

// VendorEnquiryRequest is a vendor-to-admin message.
type VendorEnquiryRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /v1/vendor/enquiries
func CreateVendorEnquiry(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		utils.NotFound(c, "Vendor not found")
		return
	}

	var req VendorEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	enquiry := models.VendorEnquiry{
		VendorID:    vendorID,
		VendorEmail: vendor.Email,
		Subject:     utils.SanitizeString(req.Subject),
		Message:     utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&enquiry).Error; err != nil {
		utils.LogError("Failed to create vendor enquiry for %d: %v", vendorID, err)
		utils.InternalServerError(c, "Failed to submit enquiry", err.Error())
		return
	}

	utils.LogInfo("Vendor %d submitted enquiry %d", vendorID, enquiry.ID)
	utils.Created(c, "Enquiry submitted", gin.H{"enquiry": enquiry})
}

// GET /v1/admin/vendor-enquiries
func ListVendorEnquiries(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.VendorEnquiry{})
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count vendor enquiries: %v", err)
		utils.InternalServerError(c, "Failed to fetch enquiries", err.Error())
		return
	}

	var enquiries []models.VendorEnquiry
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&enquiries).Error; err != nil {
		utils.LogError("Failed to fetch vendor enquiries: %v", err)
		utils.InternalServerError(c, "Failed to fetch enquiries", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Enquiries retrieved", gin.H{"enquiries": enquiries}, pagination)
}
