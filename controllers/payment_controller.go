package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// POST /v1/payments/orders
// Creates a gateway order for a checkout attempt. Amounts are in minor
// units (paise); the key secret stays server-side and only the public
// key id is returned for the checkout widget.
func CreateRazorpayOrder(c *gin.Context) {
	utils.LogInfo("CreateRazorpayOrder called")

	var req struct {
		Amount  int64  `json:"amount" binding:"required"`
		Receipt string `json:"receipt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order creation request: %v", err)
		utils.BadRequest(c, "Invalid request. amount is required", err.Error())
		return
	}

	if req.Amount <= 0 {
		utils.LogError("Rejected non-positive order amount: %d", req.Amount)
		utils.BadRequest(c, "Amount must be a positive number of paise", nil)
		return
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + uuid.New().String()
	}

	client := utils.NewRazorpayClient()
	orderData := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        "INR",
		"receipt":         receipt,
		"payment_capture": 1,
	}
	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order: %v", err)
		utils.BadGateway(c, utils.ErrPaymentInitFailed, err.Error())
		return
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		utils.LogError("Razorpay order response missing id")
		utils.BadGateway(c, utils.ErrPaymentInitFailed, nil)
		return
	}
	utils.LogInfo("Created Razorpay order %s for %d paise", orderID, req.Amount)

	utils.Success(c, "Payment initiated successfully", gin.H{
		"id":       orderID,
		"amount":   req.Amount,
		"currency": "INR",
		"receipt":  receipt,
		"key":      os.Getenv("RAZORPAY_KEY"),
	})
}

// VerifyRequest is the confirmation the checkout widget posts back.
// Every field is untrusted until the signature check passes.
type VerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PlanID            uint   `json:"plan_id"`
	UserID            uint   `json:"user_id"`
	Amount            int64  `json:"amount"`
}

// POST /v1/payments/verify
// The sole gate for treating a subscription payment as real. Recomputes
// the HMAC over "order_id|payment_id" and writes exactly one ledger row
// when it matches. A mismatch is rejected with 400 and nothing written;
// a ledger write failure is reported as 500 so monitoring can tell a
// forgery attempt from an infrastructure fault.
func VerifyRazorpayPayment(c *gin.Context) {
	utils.LogInfo("VerifyRazorpayPayment called")

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Malformed verification request: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	secret := os.Getenv("RAZORPAY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Payment signature mismatch for order %s, payment %s",
			req.RazorpayOrderID, req.RazorpayPaymentID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	utils.LogInfo("Payment signature verified for order %s", req.RazorpayOrderID)

	payment := models.Payment{
		UserID:            req.UserID,
		PlanID:            req.PlanID,
		Amount:            req.Amount,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Status:            models.PaymentStatusPaid,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		// A re-delivered confirmation trips the unique index on the
		// payment id. The payment is already on the ledger, so the
		// retry gets the same answer the first delivery did.
		if isDuplicateKeyError(err) {
			utils.LogInfo("Duplicate delivery of payment %s, ledger row already exists", req.RazorpayPaymentID)
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		utils.LogError("Failed to record verified payment %s: %v", req.RazorpayPaymentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record payment"})
		return
	}

	utils.LogInfo("Recorded payment %s for user %d, plan %d", req.RazorpayPaymentID, req.UserID, req.PlanID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// isDuplicateKeyError reports whether an insert failed on a uniqueness
// constraint. gorm surfaces ErrDuplicatedKey for postgres; the sqlite
// driver used in tests reports the constraint in the message.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// GET /v1/user/payments
// Lists the authenticated user's ledger entries, newest first.
func ListUserPayments(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "User not found")
		return
	}
	user := userVal.(models.User)

	var payments []models.Payment
	if err := config.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to list payments for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	utils.Success(c, "Payments retrieved successfully", gin.H{"payments": payments})
}
