package controllers

import (
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// PlanRequest represents a plan create/update request
type PlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	BasePrice      float64  `json:"base_price" binding:"required"`
	TaxPercent     float64  `json:"tax_percent"`
	DurationMonths int      `json:"duration_months" binding:"required"`
	Color          string   `json:"color"`
	Benefits       []string `json:"benefits"`
}

// planView decorates a plan with its computed tax-inclusive total.
func planView(p models.SubscriptionPlan) gin.H {
	return gin.H{
		"id":              p.ID,
		"name":            p.Name,
		"base_price":      p.BasePrice,
		"tax_percent":     p.TaxPercent,
		"duration_months": p.DurationMonths,
		"color":           p.Color,
		"benefits":        p.Benefits,
		"total_price":     p.TotalPrice(),
		"created_at":      p.CreatedAt,
	}
}

// sortedPlanViews returns plans ordered by tax-inclusive total, lowest
// first. The ordering lives here rather than in SQL because the total
// is computed from two columns.
func sortedPlanViews(plans []models.SubscriptionPlan) []gin.H {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].TotalPrice() < plans[j].TotalPrice()
	})
	views := make([]gin.H, 0, len(plans))
	for _, p := range plans {
		views = append(views, planView(p))
	}
	return views
}

// POST /v1/admin/plans
func CreatePlan(c *gin.Context) {
	utils.LogInfo("CreatePlan called")

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. name, base_price and duration_months are required", err.Error())
		return
	}

	if req.BasePrice <= 0 || req.DurationMonths <= 0 {
		utils.BadRequest(c, "base_price and duration_months must be positive", nil)
		return
	}

	plan := models.SubscriptionPlan{
		Name:           req.Name,
		BasePrice:      req.BasePrice,
		TaxPercent:     req.TaxPercent,
		DurationMonths: req.DurationMonths,
		Color:          req.Color,
		Benefits:       models.StringList(req.Benefits),
	}
	if plan.Color == "" {
		plan.Color = "#4F46E5"
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		utils.LogError("Failed to create plan: %v", err)
		utils.InternalServerError(c, "Failed to create plan", err.Error())
		return
	}

	utils.LogInfo("Plan created: %s", plan.Name)
	utils.Created(c, "Plan created successfully", gin.H{"plan": planView(plan)})
}

// PUT /v1/admin/plans/:id
func UpdatePlan(c *gin.Context) {
	utils.LogInfo("UpdatePlan called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid plan ID format", nil)
		return
	}

	var plan models.SubscriptionPlan
	if err := config.DB.First(&plan, id).Error; err != nil {
		utils.NotFound(c, "Plan not found")
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request. name, base_price and duration_months are required", err.Error())
		return
	}
	if req.BasePrice <= 0 || req.DurationMonths <= 0 {
		utils.BadRequest(c, "base_price and duration_months must be positive", nil)
		return
	}

	plan.Name = req.Name
	plan.BasePrice = req.BasePrice
	plan.TaxPercent = req.TaxPercent
	plan.DurationMonths = req.DurationMonths
	plan.Benefits = models.StringList(req.Benefits)
	if req.Color != "" {
		plan.Color = req.Color
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		utils.LogError("Failed to update plan %d: %v", plan.ID, err)
		utils.InternalServerError(c, "Failed to update plan", err.Error())
		return
	}

	utils.LogInfo("Plan %d updated", plan.ID)
	utils.Success(c, "Plan updated successfully", gin.H{"plan": planView(plan)})
}

// DELETE /v1/admin/plans/:id
func DeletePlan(c *gin.Context) {
	utils.LogInfo("DeletePlan called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid plan ID format", nil)
		return
	}

	var plan models.SubscriptionPlan
	if err := config.DB.First(&plan, id).Error; err != nil {
		utils.NotFound(c, "Plan not found")
		return
	}

	if err := config.DB.Delete(&plan).Error; err != nil {
		utils.LogError("Failed to delete plan %d: %v", plan.ID, err)
		utils.InternalServerError(c, "Failed to delete plan", err.Error())
		return
	}

	utils.LogInfo("Plan %d deleted", plan.ID)
	utils.Success(c, "Plan deleted successfully", nil)
}

// GET /v1/admin/plans and GET /v1/plans
// Both listings come back sorted by total price ascending.
func GetPlans(c *gin.Context) {
	var plans []models.SubscriptionPlan
	if err := config.DB.Find(&plans).Error; err != nil {
		utils.LogError("Failed to list plans: %v", err)
		utils.InternalServerError(c, "Failed to fetch plans", err.Error())
		return
	}

	utils.Success(c, "Plans retrieved successfully", gin.H{"plans": sortedPlanViews(plans)})
}
