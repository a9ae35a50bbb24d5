package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// GET /v1/admin/customers
// Paginated member directory with email/name search.
func GetCustomers(c *gin.Context) {
	utils.LogInfo("GetCustomers called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")

	query := config.DB.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR username LIKE ? OR first_name LIKE ? OR last_name LIKE ?",
			like, like, like, like)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count customers: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", err.Error())
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to list customers: %v", err)
		utils.InternalServerError(c, "Failed to fetch customers", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Customers retrieved successfully", users, pagination)
}

// PATCH /v1/admin/customers/:id/block
func BlockCustomer(c *gin.Context) {
	setCustomerBlocked(c, true)
}

// PATCH /v1/admin/customers/:id/unblock
func UnblockCustomer(c *gin.Context) {
	setCustomerBlocked(c, false)
}

func setCustomerBlocked(c *gin.Context, blocked bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid customer ID format", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.NotFound(c, "Customer not found")
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update block state for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update customer", err.Error())
		return
	}

	if blocked {
		utils.LogInfo("Blocked user %d", user.ID)
		utils.Success(c, "Customer blocked successfully", nil)
	} else {
		utils.LogInfo("Unblocked user %d", user.ID)
		utils.Success(c, "Customer unblocked successfully", nil)
	}
}
