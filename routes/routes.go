package routes

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/controllers"
	"github.com/quicktick/quicktick-api/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(utils.LoggerMiddleware(), utils.RecoveryMiddleware(), utils.CORSMiddleware(),
		utils.RequestIDMiddleware(), utils.SecurityHeadersMiddleware())

	// Session store backs the pending registration flows
	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "quicktick-dev-session-key"
	}
	store := cookie.NewStore([]byte(sessionKey))
	store.Options(sessions.Options{
		MaxAge:   60 * 60 * 24, // 1 day
		Path:     "/",
		Secure:   os.Getenv("ENV") == "production",
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("quicktick", store))

	// Stored uploads are served directly
	router.Static("/uploads", "./uploads")

	// OAuth routes live outside the versioned API
	auth := router.Group("/auth")
	{
		auth.GET("/google/login", controllers.GoogleLogin)
		auth.GET("/google/callback", controllers.GoogleCallback)
	}

	// API version group
	api := router.Group("/v1")
	{
		initPublicRoutes(api)
		initUserRoutes(api)
		initVendorRoutes(api)
		initAdminRoutes(api)
	}

	return router
}
