package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// GET /v1/admin/dashboard
// Headline counts and revenue for the admin landing page.
func GetDashboard(c *gin.Context) {
	var (
		userCount      int64
		vendorCount    int64
		pendingVendors int64
		enquiryCount   int64
		travelPending  int64
		paymentCount   int64
		revenuePaise   int64
	)

	if err := config.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		utils.LogError("Dashboard user count failed: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", err.Error())
		return
	}
	config.DB.Model(&models.Vendor{}).Count(&vendorCount)
	config.DB.Model(&models.Vendor{}).Where("status = ?", models.VendorStatusPending).Count(&pendingVendors)
	config.DB.Model(&models.Enquiry{}).Count(&enquiryCount)
	config.DB.Model(&models.TravelRequest{}).Where("status = ?", models.TravelStatusPending).Count(&travelPending)
	config.DB.Model(&models.Payment{}).Count(&paymentCount)

	var sum struct{ Total int64 }
	config.DB.Model(&models.Payment{}).Select("COALESCE(SUM(amount), 0) AS total").Scan(&sum)
	revenuePaise = sum.Total

	utils.Success(c, "Dashboard retrieved", gin.H{
		"users":                   userCount,
		"vendors":                 vendorCount,
		"pending_vendors":         pendingVendors,
		"enquiries":               enquiryCount,
		"pending_travel_requests": travelPending,
		"payments":                paymentCount,
		"revenue":                 revenuePaise, // minor units (paise)
	})
}
