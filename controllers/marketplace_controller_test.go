package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
)

func TestListPublicCategories_ActiveOnly(t *testing.T) {
	require.NoError(t, config.DB.Where("1 = 1").Delete(&models.Category{}).Error)

	active := models.Category{Name: "Plumbing", IsActive: true, Locations: models.StringList{"Bengaluru", "Mysuru"}}
	inactive := models.Category{Name: "Retired", IsActive: false}
	require.NoError(t, config.DB.Create(&active).Error)
	require.NoError(t, config.DB.Create(&inactive).Error)

	router := gin.New()
	router.GET("/v1/categories", ListPublicCategories)

	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Categories []models.Category `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Categories, 1)
	assert.Equal(t, "Plumbing", resp.Data.Categories[0].Name)
	assert.Equal(t, models.StringList{"Bengaluru", "Mysuru"}, resp.Data.Categories[0].Locations)
}

func TestCreateBusiness(t *testing.T) {
	router := gin.New()
	router.POST("/v1/businesses", CreateBusiness)

	w := postJSON(router, "/v1/businesses", gin.H{
		"name":     "Corner Bakery",
		"phone":    "+919876543210",
		"category": "Food",
		"city":     "Bengaluru",
		"pin_code": "560001",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var business models.Business
	require.NoError(t, config.DB.Where("name = ?", "Corner Bakery").First(&business).Error)
	assert.Equal(t, "+919876543210", business.Phone)

	// Bad phone is refused
	w = postJSON(router, "/v1/businesses", gin.H{
		"name":  "Bad Phone Shop",
		"phone": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTravelRequest(t *testing.T) {
	router := gin.New()
	router.POST("/v1/travel-requests", CreateTravelRequest)

	w := postJSON(router, "/v1/travel-requests", gin.H{
		"name":            "Shipper",
		"phone":           "+919876543210",
		"pickup_location": "Bengaluru",
		"drop_location":   "Chennai",
		"travel_date":     "2026-09-15",
		"weight_kg":       "120",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var request models.TravelRequest
	require.NoError(t, config.DB.Where("name = ?", "Shipper").First(&request).Error)
	assert.Equal(t, models.TravelStatusPending, request.Status)

	// Unparseable date
	w = postJSON(router, "/v1/travel-requests", gin.H{
		"name":            "Shipper",
		"phone":           "+919876543210",
		"pickup_location": "Bengaluru",
		"drop_location":   "Chennai",
		"travel_date":     "15-09-2026",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTravelRequestStatus(t *testing.T) {
	request := models.TravelRequest{
		Name: "StatusCase", Phone: "+919876543210",
		PickupLocation: "A", DropLocation: "B", TravelDate: "2026-09-15",
		Status: models.TravelStatusPending,
	}
	require.NoError(t, config.DB.Create(&request).Error)

	router := gin.New()
	router.PUT("/v1/admin/travel-requests/:id/status", UpdateTravelRequestStatus)

	w := postPut(router, "/v1/admin/travel-requests/"+itoa(request.ID)+"/status", gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.TravelRequest
	require.NoError(t, config.DB.First(&updated, request.ID).Error)
	assert.Equal(t, models.TravelStatusConfirmed, updated.Status)

	w = postPut(router, "/v1/admin/travel-requests/"+itoa(request.ID)+"/status", gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEnquiry_LinksSignedInUser(t *testing.T) {
	user := models.User{Username: "enquirer", Email: "enquirer@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)

	router := gin.New()
	router.POST("/v1/enquiries", func(c *gin.Context) {
		c.Set("user_id", user.ID)
		CreateEnquiry(c)
	})

	w := postJSON(router, "/v1/enquiries", gin.H{
		"name":    "Enquirer",
		"email":   "enquirer@example.com",
		"message": "How do I list my shop?",
	})
	// Notification email fails without SMTP config; the submission
	// must still be recorded.
	assert.Equal(t, http.StatusCreated, w.Code)

	var enquiry models.Enquiry
	require.NoError(t, config.DB.Where("email = ?", "enquirer@example.com").First(&enquiry).Error)
	require.NotNil(t, enquiry.UserID)
	assert.Equal(t, user.ID, *enquiry.UserID)
}

func TestCreateEnquiry_Anonymous(t *testing.T) {
	router := gin.New()
	router.POST("/v1/enquiries", CreateEnquiry)

	w := postJSON(router, "/v1/enquiries", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Opening hours?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var enquiry models.Enquiry
	require.NoError(t, config.DB.Where("email = ?", "visitor@example.com").First(&enquiry).Error)
	assert.Nil(t, enquiry.UserID)
}

func TestListPublicProducts_ApprovedVendorsNewestFirst(t *testing.T) {
	require.NoError(t, config.DB.Where("1 = 1").Delete(&models.VendorProduct{}).Error)

	approved := models.Vendor{Email: "feed-approved@example.com", Status: models.VendorStatusApproved, CompanyName: "Feed Co"}
	pending := models.Vendor{Email: "feed-pending@example.com", Status: models.VendorStatusPending}
	require.NoError(t, config.DB.Create(&approved).Error)
	require.NoError(t, config.DB.Create(&pending).Error)

	older := models.VendorProduct{VendorID: approved.ID, ProductName: "Sofa Shampoo", Price: 799}
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := models.VendorProduct{VendorID: approved.ID, ProductName: "Tank Clean", Price: 1299}
	hidden := models.VendorProduct{VendorID: pending.ID, ProductName: "Unvetted", Price: 99}
	require.NoError(t, config.DB.Create(&older).Error)
	require.NoError(t, config.DB.Create(&newer).Error)
	require.NoError(t, config.DB.Create(&hidden).Error)

	router := gin.New()
	router.GET("/v1/products", ListPublicProducts)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items struct {
				Products []models.VendorProduct `json:"products"`
			} `json:"items"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items.Products, 2)
	assert.Equal(t, "Tank Clean", resp.Data.Items.Products[0].ProductName)
	assert.Equal(t, "Sofa Shampoo", resp.Data.Items.Products[1].ProductName)
	assert.EqualValues(t, 2, resp.Data.Pagination.Total)

	// Name search narrows the feed
	req = httptest.NewRequest(http.MethodGet, "/v1/products?search=Tank", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items.Products, 1)
	assert.Equal(t, "Tank Clean", resp.Data.Items.Products[0].ProductName)
}

func TestListPublicTravelRequests_NewestFirst(t *testing.T) {
	require.NoError(t, config.DB.Where("1 = 1").Delete(&models.TravelRequest{}).Error)

	first := models.TravelRequest{
		Name:           "Asha",
		Phone:          "+919876500001",
		PickupLocation: "Indiranagar",
		DropLocation:   "Whitefield",
		TravelDate:     "2026-09-10",
		Status:         models.TravelStatusPending,
		CreatedAt:      time.Now().Add(-time.Hour),
	}
	second := models.TravelRequest{
		Name:           "Binu",
		Phone:          "+919876500002",
		PickupLocation: "Jayanagar",
		DropLocation:   "Hebbal",
		TravelDate:     "2026-09-12",
		Status:         models.TravelStatusPending,
	}
	require.NoError(t, config.DB.Create(&first).Error)
	require.NoError(t, config.DB.Create(&second).Error)

	router := gin.New()
	router.GET("/v1/travel-requests", ListPublicTravelRequests)

	req := httptest.NewRequest(http.MethodGet, "/v1/travel-requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items struct {
				Requests []models.TravelRequest `json:"requests"`
			} `json:"items"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items.Requests, 2)
	assert.Equal(t, "Binu", resp.Data.Items.Requests[0].Name)
	assert.Equal(t, "Asha", resp.Data.Items.Requests[1].Name)
	assert.EqualValues(t, 2, resp.Data.Pagination.Total)
}
