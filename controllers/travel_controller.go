package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// TravelRequestPayload is the booking form for goods transport.
type TravelRequestPayload struct {
	Name             string `json:"name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Purpose          string `json:"purpose"`
	PickupLocation   string `json:"pickup_location" binding:"required"`
	DropLocation     string `json:"drop_location" binding:"required"`
	TravelDate       string `json:"travel_date" binding:"required"`
	GoodsDescription string `json:"goods_description"`
	WeightKg         string `json:"weight_kg"`
}

// POST /v1/travel-requests
func CreateTravelRequest(c *gin.Context) {
	var req TravelRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	valid, formatted := utils.ValidatePhone(req.Phone)
	if !valid {
		utils.BadRequest(c, "Invalid phone number", formatted)
		return
	}
	req.Phone = formatted

	if _, err := time.Parse("2006-01-02", req.TravelDate); err != nil {
		utils.BadRequest(c, "Invalid travel date", "expected YYYY-MM-DD")
		return
	}

	request := models.TravelRequest{
		Name:             utils.SanitizeString(req.Name),
		Phone:            req.Phone,
		Purpose:          utils.SanitizeString(req.Purpose),
		PickupLocation:   utils.SanitizeString(req.PickupLocation),
		DropLocation:     utils.SanitizeString(req.DropLocation),
		TravelDate:       req.TravelDate,
		GoodsDescription: utils.SanitizeString(req.GoodsDescription),
		WeightKg:         req.WeightKg,
		Status:           models.TravelStatusPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		utils.LogError("Failed to create travel request: %v", err)
		utils.InternalServerError(c, "Failed to submit request", err.Error())
		return
	}

	utils.LogInfo("Created travel request %d (%s -> %s)", request.ID, request.PickupLocation, request.DropLocation)
	utils.Created(c, "Request submitted", gin.H{"request": request})
}

// GET /v1/travel-requests
// Open listing shown on the transport page after a submission,
// newest first.
func ListPublicTravelRequests(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.TravelRequest{})
	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count travel requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	var requests []models.TravelRequest
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&requests).Error; err != nil {
		utils.LogError("Failed to fetch travel requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Requests retrieved", gin.H{"requests": requests}, pagination)
}

// GET /v1/admin/travel-requests
func ListTravelRequests(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.TravelRequest{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count travel requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	var requests []models.TravelRequest
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&requests).Error; err != nil {
		utils.LogError("Failed to fetch travel requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch requests", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Requests retrieved", gin.H{"requests": requests}, pagination)
}

// PUT /v1/admin/travel-requests/:id/status
func UpdateTravelRequestStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}

	switch req.Status {
	case models.TravelStatusPending, models.TravelStatusConfirmed, models.TravelStatusClosed:
	default:
		utils.BadRequest(c, "Invalid status", "status must be pending, confirmed or closed")
		return
	}

	var request models.TravelRequest
	if err := config.DB.First(&request, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Request not found")
		return
	}

	request.Status = req.Status
	if err := config.DB.Save(&request).Error; err != nil {
		utils.LogError("Failed to update travel request %d: %v", request.ID, err)
		utils.InternalServerError(c, "Failed to update request", err.Error())
		return
	}

	utils.LogInfo("Travel request %d status set to %s", request.ID, req.Status)
	utils.Success(c, "Request updated", gin.H{"request": request})
}
