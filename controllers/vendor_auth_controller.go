package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// VendorRegisterRequest represents the vendor onboarding form
type VendorRegisterRequest struct {
	Email            string   `json:"email" binding:"required,email"`
	Password         string   `json:"password" binding:"required"`
	OwnerName        string   `json:"owner_name" binding:"required"`
	MobileNumber     string   `json:"mobile_number" binding:"required"`
	AlternateNumber  string   `json:"alternate_number"`
	GSTNumber        string   `json:"gst_number"`
	HouseNo          string   `json:"house_no"`
	Street           string   `json:"street"`
	Area             string   `json:"area"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Pincode          string   `json:"pincode"`
	CompanyName      string   `json:"company_name"`
	CompanyLogo      string   `json:"company_logo"`
	Website          string   `json:"website"`
	Sector           string   `json:"sector"`
	BusinessType     string   `json:"business_type"`
	BusinessKeywords string   `json:"business_keywords"`
	MediaFiles       []string `json:"media_files"`
	VideoFiles       []string `json:"video_files"`
	SubscriptionPlan string   `json:"subscription_plan"`
}

// VendorRegistrationData is the pending registration held in the
// session until the subscription payment is verified.
type VendorRegistrationData struct {
	Request         VendorRegisterRequest `json:"request"`
	RazorpayOrderID string                `json:"razorpay_order_id"`
	PlanID          uint                  `json:"plan_id"`
	AmountPaise     int64                 `json:"amount_paise"`
}

// POST /v1/vendor/register
// Starts vendor onboarding. A free-tier registration is written
// immediately; a paid plan gets a gateway order back and is finalized
// by /v1/vendor/register/verify once the checkout completes.
func RegisterVendor(c *gin.Context) {
	utils.LogInfo("RegisterVendor called")

	var req VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, "Invalid email", msg)
		return
	}
	if valid, msg := utils.ValidatePassword(req.Password); !valid {
		utils.BadRequest(c, "Invalid password", msg)
		return
	}
	if valid, formatted := utils.ValidatePhone(req.MobileNumber); !valid {
		utils.BadRequest(c, "Invalid mobile number", formatted)
		return
	} else {
		req.MobileNumber = formatted
	}
	if req.Pincode != "" {
		if valid, msg := utils.ValidatePincode(req.Pincode); !valid {
			utils.BadRequest(c, "Invalid pincode", msg)
			return
		}
	}

	var existing models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Vendor registration failed - email exists: %s", req.Email)
		utils.Conflict(c, "Email already exists", nil)
		return
	}

	// Hash up front so the paid path never parks a plaintext password
	// in the session cookie.
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash vendor password: %v", err)
		utils.InternalServerError(c, "Failed to register vendor", nil)
		return
	}
	req.Password = hashed

	// Free tier: no checkout, register right away.
	if req.SubscriptionPlan == "" {
		vendor, err := createVendorFromRequest(req, "free_tier")
		if err != nil {
			utils.LogError("Failed to create free-tier vendor %s: %v", req.Email, err)
			utils.InternalServerError(c, "Failed to register vendor", err.Error())
			return
		}
		utils.LogInfo("Registered free-tier vendor %d", vendor.ID)
		utils.Created(c, "Registration successful", gin.H{
			"vendor": gin.H{"id": vendor.ID, "email": vendor.Email, "status": vendor.Status},
		})
		return
	}

	var plan models.SubscriptionPlan
	if err := config.DB.Where("name = ?", req.SubscriptionPlan).First(&plan).Error; err != nil {
		utils.BadRequest(c, "Unknown subscription plan", nil)
		return
	}

	amountPaise := int64(plan.TotalPrice() * 100)

	client := utils.NewRazorpayClient()
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"receipt":         "vendor_" + uuid.New().String(),
		"payment_capture": 1,
	}
	order, err := client.Order.Create(orderData, nil)
	if err != nil {
		utils.LogError("Failed to create Razorpay order for vendor %s: %v", req.Email, err)
		utils.BadGateway(c, utils.ErrPaymentInitFailed, err.Error())
		return
	}
	orderID := fmt.Sprintf("%v", order["id"])

	session := sessions.Default(c)
	session.Set("vendor_registration", VendorRegistrationData{
		Request:         req,
		RazorpayOrderID: orderID,
		PlanID:          plan.ID,
		AmountPaise:     amountPaise,
	})
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save vendor registration session: %v", err)
		utils.InternalServerError(c, "Failed to register vendor", nil)
		return
	}

	utils.LogInfo("Created Razorpay order %s for vendor registration %s", orderID, req.Email)
	utils.Success(c, "Complete payment to finish registration", gin.H{
		"order": gin.H{
			"id":       orderID,
			"amount":   amountPaise,
			"currency": "INR",
		},
		"plan": gin.H{
			"id":          plan.ID,
			"name":        plan.Name,
			"total_price": plan.TotalPrice(),
		},
		"key": os.Getenv("RAZORPAY_KEY"),
	})
}

// POST /v1/vendor/register/verify
// Finalizes a paid vendor registration after the checkout confirmation
// passes the signature gate.
func VerifyVendorRegistration(c *gin.Context) {
	utils.LogInfo("VerifyVendorRegistration called")

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	session := sessions.Default(c)
	val := session.Get("vendor_registration")
	data, ok := val.(VendorRegistrationData)
	if !ok {
		utils.LogError("Vendor payment verification without pending registration")
		utils.BadRequest(c, "No pending registration found. Please register again.", nil)
		return
	}

	if data.RazorpayOrderID != req.RazorpayOrderID {
		utils.LogError("Razorpay order ID mismatch for vendor registration. Expected: %s, Received: %s",
			data.RazorpayOrderID, req.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	secret := os.Getenv("RAZORPAY_SECRET")
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, secret) {
		utils.LogError("Vendor registration signature mismatch for order %s", req.RazorpayOrderID)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	vendor, err := createVendorFromRequest(data.Request, req.RazorpayPaymentID)
	if err != nil {
		utils.LogError("Failed to create vendor %s after payment: %v", data.Request.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to register vendor"})
		return
	}

	payment := models.Payment{
		PlanID:            data.PlanID,
		Amount:            data.AmountPaise,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Status:            models.PaymentStatusPaid,
	}
	if err := config.DB.Create(&payment).Error; err != nil && !isDuplicateKeyError(err) {
		utils.LogError("Failed to record vendor subscription payment %s: %v", req.RazorpayPaymentID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record payment"})
		return
	}

	session.Delete("vendor_registration")
	_ = session.Save()

	utils.LogInfo("Registered vendor %d with payment %s", vendor.ID, req.RazorpayPaymentID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vendor":  gin.H{"id": vendor.ID, "email": vendor.Email, "status": vendor.Status},
	})
}

// createVendorFromRequest writes the vendor row. req.Password must
// already be hashed.
func createVendorFromRequest(req VendorRegisterRequest, paymentID string) (*models.Vendor, error) {
	address := fmt.Sprintf("%s, %s, %s, %s, %s - %s",
		req.HouseNo, req.Street, req.Area, req.City, req.State, req.Pincode)

	vendor := models.Vendor{
		Email:            req.Email,
		Password:         req.Password,
		OwnerName:        utils.SanitizeString(req.OwnerName),
		MobileNumber:     req.MobileNumber,
		AlternateNumber:  req.AlternateNumber,
		GSTNumber:        req.GSTNumber,
		Address:          address,
		City:             req.City,
		State:            req.State,
		Pincode:          req.Pincode,
		CompanyName:      utils.SanitizeString(req.CompanyName),
		CompanyLogo:      req.CompanyLogo,
		Website:          req.Website,
		Sector:           req.Sector,
		BusinessType:     req.BusinessType,
		BusinessKeywords: req.BusinessKeywords,
		MediaFiles:       models.StringList(req.MediaFiles),
		VideoFiles:       models.StringList(req.VideoFiles),
		SubscriptionPlan: req.SubscriptionPlan,
		PaymentID:        paymentID,
		Status:           models.VendorStatusPending,
	}
	if err := config.DB.Create(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// POST /v1/vendor/login
func LoginVendor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	utils.LogInfo("Vendor login attempt for email: %s", req.Email)

	var vendor models.Vendor
	if err := config.DB.Where("email = ?", req.Email).First(&vendor).Error; err != nil {
		utils.LogError("Vendor login failed - no account for email: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, vendor.Password) {
		utils.LogError("Vendor login failed - wrong password for vendor %d", vendor.ID)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if vendor.Status == models.VendorStatusRejected {
		utils.LogError("Login refused - rejected vendor %d", vendor.ID)
		utils.Forbidden(c, "Vendor account is not active")
		return
	}

	token, err := utils.GenerateVendorToken(&vendor)
	if err != nil {
		utils.LogError("Failed to generate token for vendor %d: %v", vendor.ID, err)
		utils.InternalServerError(c, "Failed to login", nil)
		return
	}

	utils.LogInfo("Vendor %d logged in", vendor.ID)
	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"vendor": gin.H{
			"id":           vendor.ID,
			"email":        vendor.Email,
			"company_name": vendor.CompanyName,
			"status":       vendor.Status,
		},
	})
}
