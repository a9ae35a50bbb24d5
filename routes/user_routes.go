package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/controllers"
	"github.com/quicktick/quicktick-api/middleware"
)

// initUserRoutes registers customer signup, login and payment routes
func initUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", controllers.RegisterUser)
		users.POST("/signup/verify", controllers.VerifyRegistrationOTP)
		users.POST("/login", controllers.LoginUser)
	}

	// Checkout endpoints are open to the widget callback; the ledger
	// listing needs a signed-in user.
	payments := router.Group("/payments")
	{
		payments.POST("/orders", middleware.OptionalAuthMiddleware(), controllers.CreateRazorpayOrder)
		payments.POST("/verify", middleware.OptionalAuthMiddleware(), controllers.VerifyRazorpayPayment)
		payments.POST("/help/verify", middleware.AuthMiddleware(), controllers.VerifyHelpPayment)
	}

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/payments", controllers.ListUserPayments)
		user.GET("/payments/:id/receipt", controllers.DownloadPaymentReceipt)
		user.GET("/help-payments", controllers.ListHelpPayments)
	}
}
