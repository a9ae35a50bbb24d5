package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// HelpVerifyRequest is the confirmation posted after a Help & Earn
// contribution checkout, together with the donor details from the form.
type HelpVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	Amount            int64  `json:"amount"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	ReferralName      string `json:"referral_name"`
	ReferralID        string `json:"referral_id"`
	Category          string `json:"category"`
	GiveAmount        string `json:"give_amount"`
	ReferralNumber    string `json:"referral_number"`
}

// POST /v1/user/help/verify
// Same verification gate as subscription payments, writing the
// contribution ledger instead.
func VerifyHelpPayment(c *gin.Context) {
	utils.LogInfo("VerifyHelpPayment called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var req HelpVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Malformed contribution verification request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	secret := os.Getenv("RAZORPAY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Contribution signature mismatch for order %s, payment %s",
			req.RazorpayOrderID, req.RazorpayPaymentID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	payment := models.HelpPayment{
		UserID:            user.ID,
		Amount:            req.Amount,
		Name:              utils.SanitizeString(req.Name),
		Phone:             req.Phone,
		Email:             req.Email,
		ReferralName:      utils.SanitizeString(req.ReferralName),
		ReferralID:        req.ReferralID,
		Category:          req.Category,
		GiveAmount:        req.GiveAmount,
		ReferralNumber:    req.ReferralNumber,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Status:            models.PaymentStatusPaid,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		if isDuplicateKeyError(err) {
			utils.LogInfo("Duplicate delivery of contribution %s", req.RazorpayPaymentID)
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		utils.LogError("Failed to record contribution %s: %v", req.RazorpayPaymentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record payment"})
		return
	}

	utils.LogInfo("Recorded contribution %s from user %d", req.RazorpayPaymentID, user.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /v1/user/help/payments
func ListHelpPayments(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var payments []models.HelpPayment
	if err := config.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to list contributions for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch contributions", err.Error())
		return
	}

	utils.Success(c, "Contributions retrieved successfully", gin.H{"payments": payments})
}
