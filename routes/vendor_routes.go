package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/controllers"
	"github.com/quicktick/quicktick-api/middleware"
)

// initVendorRoutes registers vendor onboarding and portal routes
func initVendorRoutes(router *gin.RouterGroup) {
	vendor := router.Group("/vendor")
	{
		// Onboarding
		vendor.POST("/register", controllers.RegisterVendor)
		vendor.POST("/register/verify", controllers.VerifyVendorRegistration)
		vendor.POST("/login", controllers.LoginVendor)

		// Portal
		vendor.Use(middleware.VendorAuthMiddleware())
		{
			vendor.GET("/profile", controllers.GetVendorProfile)
			vendor.PUT("/profile", controllers.UpdateVendorProfile)

			vendor.POST("/products", controllers.CreateVendorProduct)
			vendor.GET("/products", controllers.ListVendorProducts)
			vendor.PUT("/products/:id", controllers.UpdateVendorProduct)
			vendor.DELETE("/products/:id", controllers.DeleteVendorProduct)

			vendor.POST("/enquiries", controllers.CreateVendorEnquiry)
		}
	}
}
