package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/controllers"
	"github.com/quicktick/quicktick-api/middleware"
)

// initAdminRoutes registers the admin console routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)
		admin.POST("/logout", controllers.AdminLogout)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/dashboard", controllers.GetDashboard)

			// Customer management
			admin.GET("/customers", controllers.GetCustomers)
			admin.PATCH("/customers/:id/block", controllers.BlockCustomer)
			admin.PATCH("/customers/:id/unblock", controllers.UnblockCustomer)

			// Category management
			admin.POST("/categories", controllers.CreateCategory)
			admin.GET("/categories", controllers.GetCategories)
			admin.PUT("/categories/:id", controllers.UpdateCategory)
			admin.DELETE("/categories/:id", controllers.DeleteCategory)

			// Subscription plans
			admin.GET("/plans", controllers.GetPlans)
			admin.POST("/plans", controllers.CreatePlan)
			admin.PUT("/plans/:id", controllers.UpdatePlan)
			admin.DELETE("/plans/:id", controllers.DeletePlan)

			// Vendor management
			admin.GET("/vendors", controllers.GetVendors)
			admin.PUT("/vendors/:id/status", controllers.UpdateVendorStatus)

			// Directory and requests
			admin.DELETE("/businesses/:id", controllers.DeleteBusiness)
			admin.GET("/enquiries", controllers.ListEnquiries)
			admin.GET("/vendor-enquiries", controllers.ListVendorEnquiries)
			admin.GET("/travel-requests", controllers.ListTravelRequests)
			admin.PUT("/travel-requests/:id/status", controllers.UpdateTravelRequestStatus)

			// Home feed content
			home := admin.Group("/home")
			{
				home.POST("/podcasts", controllers.CreatePodcastVideo)
				home.DELETE("/podcasts/:id", controllers.DeletePodcastVideo)
				home.POST("/influencers", controllers.CreateInfluencerVideo)
				home.DELETE("/influencers/:id", controllers.DeleteInfluencerVideo)
				home.POST("/banners", controllers.CreateDigitalBanner)
				home.DELETE("/banners/:id", controllers.DeleteDigitalBanner)
				home.POST("/branding", controllers.CreateBrandingVideo)
				home.DELETE("/branding/:id", controllers.DeleteBrandingVideo)
				home.POST("/certificates", controllers.CreateCertificate)
				home.DELETE("/certificates/:id", controllers.DeleteCertificate)
				home.POST("/help-earn-categories", controllers.CreateHelpEarnCategory)
				home.DELETE("/help-earn-categories/:id", controllers.DeleteHelpEarnCategory)
			}

			// Reports
			admin.GET("/exports/payments", controllers.DownloadPaymentsExcel)
			admin.GET("/exports/vendors", controllers.DownloadVendorsExcel)

			// Sub-admin management, full admins only
			subadmins := admin.Group("/subadmins")
			subadmins.Use(middleware.SuperAdminMiddleware())
			{
				subadmins.GET("", controllers.ListSubAdmins)
				subadmins.POST("", controllers.CreateSubAdmin)
				subadmins.PATCH("/:id/deactivate", controllers.DeactivateSubAdmin)
			}
		}
	}
}
