package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// VendorProductRequest is the create/update payload for a vendor listing.
type VendorProductRequest struct {
	ProductName  string   `json:"product_name" binding:"required"`
	Price        float64  `json:"price"`
	Description  string   `json:"description"`
	ProductImage []string `json:"product_image"`
}

// POST /v1/vendor/products
func CreateVendorProduct(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var req VendorProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Price < 0 {
		utils.BadRequest(c, "Invalid price", "price cannot be negative")
		return
	}

	product := models.VendorProduct{
		VendorID:     vendorID,
		ProductName:  utils.SanitizeString(req.ProductName),
		Price:        req.Price,
		Description:  utils.SanitizeString(req.Description),
		ProductImage: models.StringList(req.ProductImage),
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product for vendor %d: %v", vendorID, err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Vendor %d created product %d", vendorID, product.ID)
	utils.Created(c, "Product created", gin.H{"product": product})
}

// GET /v1/vendor/products
func ListVendorProducts(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var products []models.VendorProduct
	if err := config.DB.Where("vendor_id = ?", vendorID).
		Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to list products for vendor %d: %v", vendorID, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved", gin.H{"products": products})
}

// PUT /v1/vendor/products/:id
func UpdateVendorProduct(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var product models.VendorProduct
	if err := config.DB.Where("id = ? AND vendor_id = ?", c.Param("id"), vendorID).
		First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req VendorProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request format", err.Error())
		return
	}
	if req.Price < 0 {
		utils.BadRequest(c, "Invalid price", "price cannot be negative")
		return
	}

	product.ProductName = utils.SanitizeString(req.ProductName)
	product.Price = req.Price
	product.Description = utils.SanitizeString(req.Description)
	if req.ProductImage != nil {
		product.ProductImage = models.StringList(req.ProductImage)
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.Success(c, "Product updated", gin.H{"product": product})
}

// DELETE /v1/vendor/products/:id
func DeleteVendorProduct(c *gin.Context) {
	vendorID := c.GetUint("vendor_id")

	var product models.VendorProduct
	if err := config.DB.Where("id = ? AND vendor_id = ?", c.Param("id"), vendorID).
		First(&product).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Vendor %d deleted product %d", vendorID, product.ID)
	utils.Success(c, "Product deleted", nil)
}

// GET /v1/products
// Public listing across all approved vendors, newest first. Feeds the
// storefront product feed.
func ListPublicProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	approvedVendors := config.DB.Model(&models.Vendor{}).
		Select("id").Where("status = ?", models.VendorStatusApproved)

	query := config.DB.Model(&models.VendorProduct{}).
		Where("vendor_id IN (?)", approvedVendors)
	if search := c.Query("search"); search != "" {
		query = query.Where("product_name LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&pagination.Total).Error; err != nil {
		utils.LogError("Failed to count public products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	var products []models.VendorProduct
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to list public products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.SendPaginatedResponse(c, "Products retrieved", gin.H{"products": products}, pagination)
}

// GET /v1/vendors/:id/products
// Public listing for an approved vendor's catalogue.
func ListPublicVendorProducts(c *gin.Context) {
	var vendor models.Vendor
	if err := config.DB.Where("id = ? AND status = ?", c.Param("id"), models.VendorStatusApproved).
		First(&vendor).Error; err != nil {
		utils.NotFound(c, "Vendor not found")
		return
	}

	var products []models.VendorProduct
	if err := config.DB.Where("vendor_id = ?", vendor.ID).
		Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to list public products for vendor %d: %v", vendor.ID, err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	utils.Success(c, "Products retrieved", gin.H{
		"vendor": gin.H{
			"id":           vendor.ID,
			"company_name": vendor.CompanyName,
			"sector":       vendor.Sector,
			"city":         vendor.City,
		},
		"products": products,
	})
}
