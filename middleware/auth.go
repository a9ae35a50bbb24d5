package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	if tokenString == authHeader {
		return "", false
	}
	return tokenString, true
}

// AuthMiddleware authenticates a customer and stores the user in context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing or malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.LogError("Invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, uint(userID)).Error; err != nil {
			utils.LogError("User not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		if user.IsBlocked {
			utils.LogError("Blocked user attempted access: %d", user.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is blocked"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid bearer token
// is present but lets anonymous requests through untouched.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if userID, ok := claims["user_id"].(float64); ok {
			var user models.User
			if err := config.DB.First(&user, uint(userID)).Error; err == nil && !user.IsBlocked {
				c.Set("user", user)
				c.Set("user_id", user.ID)
			}
		}
		c.Next()
	}
}

// VendorAuthMiddleware authenticates a vendor and stores it in context
func VendorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing or malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.LogError("Invalid vendor token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		vendorID, ok := claims["vendor_id"].(float64)
		if !ok {
			utils.LogError("Vendor ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		var vendor models.Vendor
		if err := config.DB.First(&vendor, uint(vendorID)).Error; err != nil {
			utils.LogError("Vendor not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Vendor not found"})
			c.Abort()
			return
		}

		if vendor.Status == models.VendorStatusRejected {
			utils.LogError("Rejected vendor attempted access: %d", vendor.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Vendor account is not active"})
			c.Abort()
			return
		}

		c.Set("vendor", vendor)
		c.Set("vendor_id", vendor.ID)
		c.Next()
	}
}

// AdminAuthMiddleware authenticates an admin or sub-admin and stores it
// in context
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.LogError("Missing or malformed Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.LogError("Invalid admin token: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		adminID, ok := claims["admin_id"].(float64)
		if !ok {
			utils.LogError("Admin ID not found in token claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login for access"})
			c.Abort()
			return
		}

		var admin models.Admin
		if err := config.DB.First(&admin, uint(adminID)).Error; err != nil {
			utils.LogError("Admin not found: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found"})
			c.Abort()
			return
		}

		if !admin.IsActive {
			utils.LogError("Inactive admin attempted access: %d", admin.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account is inactive"})
			c.Abort()
			return
		}

		c.Set("admin", admin)
		c.Set("admin_id", admin.ID)
		c.Next()
	}
}

// SuperAdminMiddleware restricts a route to full admins. Sub-admins are
// refused. Must run after AdminAuthMiddleware.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, exists := c.Get("admin")
		if !exists {
			utils.LogError("Admin not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not found in context"})
			c.Abort()
			return
		}

		adminModel, ok := admin.(models.Admin)
		if !ok {
			utils.LogError("Invalid admin type in context")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid admin type"})
			c.Abort()
			return
		}

		if adminModel.Role != models.AdminRoleAdmin {
			utils.LogError("Sub-admin attempted restricted access: %d", adminModel.ID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
