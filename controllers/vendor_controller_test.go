package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

func TestRegisterVendor_FreeTier(t *testing.T) {
	router := gin.New()
	router.POST("/v1/vendor/register", RegisterVendor)

	w := postJSON(router, "/v1/vendor/register", gin.H{
		"email":         "freetier@example.com",
		"password":      "Vendor@123",
		"owner_name":    "Free Tier Owner",
		"mobile_number": "+919876543210",
		"company_name":  "Free Tier Co",
		"city":          "Bengaluru",
		"pincode":       "560001",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var vendor models.Vendor
	require.NoError(t, config.DB.Where("email = ?", "freetier@example.com").First(&vendor).Error)
	assert.Equal(t, models.VendorStatusPending, vendor.Status)
	assert.Equal(t, "free_tier", vendor.PaymentID)
	assert.True(t, utils.CheckPassword("Vendor@123", vendor.Password))

	// Same email again is a conflict
	w = postJSON(router, "/v1/vendor/register", gin.H{
		"email":         "freetier@example.com",
		"password":      "Vendor@123",
		"owner_name":    "Free Tier Owner",
		"mobile_number": "+919876543210",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterVendor_RejectsWeakPassword(t *testing.T) {
	router := gin.New()
	router.POST("/v1/vendor/register", RegisterVendor)

	w := postJSON(router, "/v1/vendor/register", gin.H{
		"email":         "weakpass@example.com",
		"password":      "short",
		"owner_name":    "Owner",
		"mobile_number": "+919876543210",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginVendor(t *testing.T) {
	hash, err := utils.HashPassword("Vendor@123")
	require.NoError(t, err)
	vendor := models.Vendor{
		Email:    "login-vendor@example.com",
		Password: hash,
		Status:   models.VendorStatusApproved,
	}
	require.NoError(t, config.DB.Create(&vendor).Error)

	router := gin.New()
	router.POST("/v1/vendor/login", LoginVendor)

	w := postJSON(router, "/v1/vendor/login", gin.H{
		"email":    "login-vendor@example.com",
		"password": "Vendor@123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	claims, err := utils.ParseToken(resp.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, float64(vendor.ID), claims["vendor_id"])

	// Wrong password
	w = postJSON(router, "/v1/vendor/login", gin.H{
		"email":    "login-vendor@example.com",
		"password": "Vendor@124",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginVendor_RejectedAccount(t *testing.T) {
	hash, err := utils.HashPassword("Vendor@123")
	require.NoError(t, err)
	vendor := models.Vendor{
		Email:    "rejected-vendor@example.com",
		Password: hash,
		Status:   models.VendorStatusRejected,
	}
	require.NoError(t, config.DB.Create(&vendor).Error)

	router := gin.New()
	router.POST("/v1/vendor/login", LoginVendor)

	w := postJSON(router, "/v1/vendor/login", gin.H{
		"email":    "rejected-vendor@example.com",
		"password": "Vendor@123",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateVendorStatus(t *testing.T) {
	vendor := models.Vendor{Email: "status-vendor@example.com", Status: models.VendorStatusPending}
	require.NoError(t, config.DB.Create(&vendor).Error)

	router := gin.New()
	router.PUT("/v1/admin/vendors/:id/status", UpdateVendorStatus)

	w := postPut(router, "/v1/admin/vendors/"+itoa(vendor.ID)+"/status", gin.H{"status": "approved"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Vendor
	require.NoError(t, config.DB.First(&updated, vendor.ID).Error)
	assert.Equal(t, models.VendorStatusApproved, updated.Status)

	// Unknown status value is refused
	w = postPut(router, "/v1/admin/vendors/"+itoa(vendor.ID)+"/status", gin.H{"status": "suspended"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorProductOwnership(t *testing.T) {
	owner := models.Vendor{Email: "owner-vendor@example.com", Status: models.VendorStatusApproved}
	other := models.Vendor{Email: "other-vendor@example.com", Status: models.VendorStatusApproved}
	require.NoError(t, config.DB.Create(&owner).Error)
	require.NoError(t, config.DB.Create(&other).Error)

	product := models.VendorProduct{VendorID: owner.ID, ProductName: "Deep Clean", Price: 499}
	require.NoError(t, config.DB.Create(&product).Error)

	// The other vendor cannot edit it
	router := gin.New()
	router.PUT("/v1/vendor/products/:id", func(c *gin.Context) {
		c.Set("vendor_id", other.ID)
		UpdateVendorProduct(c)
	})

	w := postPut(router, "/v1/vendor/products/"+itoa(product.ID), gin.H{
		"product_name": "Hijacked",
		"price":        1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.VendorProduct
	require.NoError(t, config.DB.First(&unchanged, product.ID).Error)
	assert.Equal(t, "Deep Clean", unchanged.ProductName)
}

// vendorVerifyRouter wires the cookie store plus a seeding endpoint so
// tests can park a pending paid registration the way RegisterVendor does.
func vendorVerifyRouter(seed VendorRegistrationData) *gin.Engine {
	router := gin.New()
	store := cookie.NewStore([]byte("test-session-key"))
	router.Use(sessions.Sessions("test", store))
	router.POST("/seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("vendor_registration", seed)
		_ = session.Save()
		c.Status(http.StatusOK)
	})
	router.POST("/v1/vendor/register/verify", VerifyVendorRegistration)
	return router
}

func TestVerifyVendorRegistration_StoresParkedHash(t *testing.T) {
	hash, err := utils.HashPassword("Vendor@123")
	require.NoError(t, err)

	plan := models.SubscriptionPlan{Name: "Starter", BasePrice: 1000, TaxPercent: 18, DurationMonths: 12}
	require.NoError(t, config.DB.Create(&plan).Error)

	router := vendorVerifyRouter(VendorRegistrationData{
		Request: VendorRegisterRequest{
			Email:        "paid-vendor@example.com",
			Password:     hash,
			OwnerName:    "Paid Owner",
			MobileNumber: "+919876543211",
			City:         "Bengaluru",
		},
		RazorpayOrderID: "order_vendreg1",
		PlanID:          plan.ID,
		AmountPaise:     118000,
	})

	seed := postJSON(router, "/seed", nil)
	require.Equal(t, http.StatusOK, seed.Code)
	cookies := seed.Result().Cookies()

	w := doJSONWithCookies(router, "/v1/vendor/register/verify", gin.H{
		"razorpay_order_id":   "order_vendreg1",
		"razorpay_payment_id": "pay_vendreg1",
		"razorpay_signature":  signPayment("order_vendreg1", "pay_vendreg1"),
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var vendor models.Vendor
	require.NoError(t, config.DB.Where("email = ?", "paid-vendor@example.com").First(&vendor).Error)
	assert.Equal(t, models.VendorStatusPending, vendor.Status)
	assert.Equal(t, "pay_vendreg1", vendor.PaymentID)

	// The hash parked in the session is written through unchanged
	assert.Equal(t, hash, vendor.Password)
	assert.True(t, utils.CheckPassword("Vendor@123", vendor.Password))

	assert.EqualValues(t, 1, paymentCount(t, "pay_vendreg1"))
}

func TestVerifyVendorRegistration_BadSignature(t *testing.T) {
	hash, err := utils.HashPassword("Vendor@123")
	require.NoError(t, err)

	router := vendorVerifyRouter(VendorRegistrationData{
		Request: VendorRegisterRequest{
			Email:        "forged-vendor@example.com",
			Password:     hash,
			OwnerName:    "Forged Owner",
			MobileNumber: "+919876543212",
		},
		RazorpayOrderID: "order_vendreg2",
		PlanID:          1,
		AmountPaise:     118000,
	})

	seed := postJSON(router, "/seed", nil)
	cookies := seed.Result().Cookies()

	w := doJSONWithCookies(router, "/v1/vendor/register/verify", gin.H{
		"razorpay_order_id":   "order_vendreg2",
		"razorpay_payment_id": "pay_vendreg2",
		"razorpay_signature":  signPayment("order_vendreg2", "pay_tampered"),
	}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	config.DB.Model(&models.Vendor{}).Where("email = ?", "forged-vendor@example.com").Count(&count)
	assert.EqualValues(t, 0, count)
}
