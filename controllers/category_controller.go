package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// parseLocations splits the comma-separated locations field from the
// admin form into a clean list.
func parseLocations(raw string) models.StringList {
	var locations models.StringList
	for _, loc := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}
	return locations
}

// POST /v1/admin/categories
// Multipart form: name, description, locations (comma-separated),
// is_active, optional image file.
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.BadRequest(c, "Category name is required", nil)
		return
	}

	var existing models.Category
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		utils.LogError("Category with name %s already exists", name)
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	category := models.Category{
		Name:        name,
		Description: utils.SanitizeString(c.PostForm("description")),
		Locations:   parseLocations(c.PostForm("locations")),
		IsActive:    c.DefaultPostForm("is_active", "true") == "true",
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveImage(file, "uploads/categories")
		if err != nil {
			utils.BadRequest(c, "Invalid image", err.Error())
			return
		}
		category.ImageURL = path
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created successfully: %s", category.Name)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// GET /v1/admin/categories
// Admin listing with search and pagination, inactive rows included.
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	pagination := utils.NewPagination(c)
	search := c.Query("search")

	query := config.DB.Model(&models.Category{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	var categories []models.Category
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to list categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Categories retrieved successfully", categories, pagination)
}

// PUT /v1/admin/categories/:id
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		var existing models.Category
		if err := config.DB.Where("name = ? AND id != ?", name, category.ID).First(&existing).Error; err == nil {
			utils.Conflict(c, "A category with this name already exists", nil)
			return
		}
		category.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		category.Description = utils.SanitizeString(description)
	}
	if locations := c.PostForm("locations"); locations != "" {
		category.Locations = parseLocations(locations)
	}
	if isActive, ok := c.GetPostForm("is_active"); ok {
		category.IsActive = isActive == "true"
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveImage(file, "uploads/categories")
		if err != nil {
			utils.BadRequest(c, "Invalid image", err.Error())
			return
		}
		category.ImageURL = path
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", err.Error())
		return
	}

	utils.LogInfo("Category %d updated", category.ID)
	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DELETE /v1/admin/categories/:id
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid category ID format", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Category %d deleted", category.ID)
	utils.Success(c, "Category deleted successfully", nil)
}

// GET /v1/categories
// Public storefront listing, active rows only.
func ListPublicCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).
		Order("created_at DESC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to list public categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}
