package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/controllers"
	"github.com/quicktick/quicktick-api/middleware"
)

// initPublicRoutes registers the unauthenticated marketplace surface
func initPublicRoutes(router *gin.RouterGroup) {
	// Directory and catalogue
	router.GET("/categories", controllers.ListPublicCategories)
	router.GET("/plans", controllers.GetPlans)
	router.GET("/products", controllers.ListPublicProducts)
	router.GET("/vendors/:id/products", controllers.ListPublicVendorProducts)

	// Free listings and open submissions
	router.POST("/businesses", controllers.CreateBusiness)
	router.GET("/businesses", controllers.ListBusinesses)
	router.POST("/travel-requests", controllers.CreateTravelRequest)
	router.GET("/travel-requests", controllers.ListPublicTravelRequests)
	router.POST("/enquiries", middleware.OptionalAuthMiddleware(), controllers.CreateEnquiry)

	// Home feed content
	home := router.Group("/home")
	{
		home.GET("/podcasts", controllers.ListPodcastVideos)
		home.GET("/influencers", controllers.ListInfluencerVideos)
		home.GET("/banners", controllers.ListDigitalBanners)
		home.GET("/branding", controllers.ListBrandingVideos)
		home.GET("/certificates", controllers.ListCertificates)
		home.GET("/help-earn-categories", controllers.ListHelpEarnCategories)
	}
}
