package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
	"github.com/quicktick/quicktick-api/utils"
)

// Admin console for the promotional content shown on the public home
// feed. Every store takes either a direct file upload or an external
// URL, and the public listings come back newest first.

// resolveUpload returns the stored path for a multipart upload when one
// was sent, falling back to the URL form field.
func resolveUpload(c *gin.Context, fileField, urlField, uploadDir string, video bool) (string, error) {
	file, err := c.FormFile(fileField)
	if err == nil {
		if video {
			return utils.SaveVideo(file, uploadDir)
		}
		return utils.SaveImage(file, uploadDir)
	}
	return c.PostForm(urlField), nil
}

// POST /v1/admin/home/podcasts
func CreatePodcastVideo(c *gin.Context) {
	videoURL, err := resolveUpload(c, "video", "video_url", "uploads/podcasts", true)
	if err != nil {
		utils.BadRequest(c, "Invalid video upload", err.Error())
		return
	}
	if videoURL == "" {
		utils.BadRequest(c, "Video is required", "provide a video file or video_url")
		return
	}

	video := models.PodcastVideo{
		Title:    utils.SanitizeString(c.PostForm("title")),
		VideoURL: videoURL,
	}
	if err := config.DB.Create(&video).Error; err != nil {
		utils.LogError("Failed to create podcast video: %v", err)
		utils.InternalServerError(c, "Failed to create podcast", err.Error())
		return
	}

	utils.LogInfo("Created podcast video %d", video.ID)
	utils.Created(c, "Podcast created", gin.H{"podcast": video})
}

// GET /v1/home/podcasts
func ListPodcastVideos(c *gin.Context) {
	var videos []models.PodcastVideo
	if err := config.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		utils.LogError("Failed to list podcast videos: %v", err)
		utils.InternalServerError(c, "Failed to fetch podcasts", err.Error())
		return
	}
	utils.Success(c, "Podcasts retrieved", gin.H{"podcasts": videos})
}

// DELETE /v1/admin/home/podcasts/:id
func DeletePodcastVideo(c *gin.Context) {
	deleteContentRow(c, &models.PodcastVideo{}, "Podcast")
}

// POST /v1/admin/home/influencers
func CreateInfluencerVideo(c *gin.Context) {
	videoURL, err := resolveUpload(c, "video", "video_url", "uploads/influencers", true)
	if err != nil {
		utils.BadRequest(c, "Invalid video upload", err.Error())
		return
	}
	if videoURL == "" {
		utils.BadRequest(c, "Video is required", "provide a video file or video_url")
		return
	}

	video := models.InfluencerVideo{
		Name:     utils.SanitizeString(c.PostForm("name")),
		VideoURL: videoURL,
	}
	if err := config.DB.Create(&video).Error; err != nil {
		utils.LogError("Failed to create influencer video: %v", err)
		utils.InternalServerError(c, "Failed to create influencer video", err.Error())
		return
	}

	utils.LogInfo("Created influencer video %d", video.ID)
	utils.Created(c, "Influencer video created", gin.H{"video": video})
}

// GET /v1/home/influencers
func ListInfluencerVideos(c *gin.Context) {
	var videos []models.InfluencerVideo
	if err := config.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		utils.LogError("Failed to list influencer videos: %v", err)
		utils.InternalServerError(c, "Failed to fetch influencer videos", err.Error())
		return
	}
	utils.Success(c, "Influencer videos retrieved", gin.H{"videos": videos})
}

// DELETE /v1/admin/home/influencers/:id
func DeleteInfluencerVideo(c *gin.Context) {
	deleteContentRow(c, &models.InfluencerVideo{}, "Influencer video")
}

// POST /v1/admin/home/banners
func CreateDigitalBanner(c *gin.Context) {
	imageURL, err := resolveUpload(c, "image", "image_url", "uploads/banners", false)
	if err != nil {
		utils.BadRequest(c, "Invalid image upload", err.Error())
		return
	}
	if imageURL == "" {
		utils.BadRequest(c, "Image is required", "provide an image file or image_url")
		return
	}

	banner := models.DigitalBanner{ImageURL: imageURL}
	if title := utils.SanitizeString(c.PostForm("title")); title != "" {
		banner.Title = title
	}
	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Failed to create banner", err.Error())
		return
	}

	utils.LogInfo("Created digital banner %d", banner.ID)
	utils.Created(c, "Banner created", gin.H{"banner": banner})
}

// GET /v1/home/banners
func ListDigitalBanners(c *gin.Context) {
	var banners []models.DigitalBanner
	if err := config.DB.Order("created_at DESC").Find(&banners).Error; err != nil {
		utils.LogError("Failed to list banners: %v", err)
		utils.InternalServerError(c, "Failed to fetch banners", err.Error())
		return
	}
	utils.Success(c, "Banners retrieved", gin.H{"banners": banners})
}

// DELETE /v1/admin/home/banners/:id
func DeleteDigitalBanner(c *gin.Context) {
	deleteContentRow(c, &models.DigitalBanner{}, "Banner")
}

// POST /v1/admin/home/branding
func CreateBrandingVideo(c *gin.Context) {
	videoURL, err := resolveUpload(c, "video", "video_url", "uploads/branding", true)
	if err != nil {
		utils.BadRequest(c, "Invalid video upload", err.Error())
		return
	}
	if videoURL == "" {
		utils.BadRequest(c, "Video is required", "provide a video file or video_url")
		return
	}

	video := models.BrandingVideo{
		Title:    utils.SanitizeString(c.PostForm("title")),
		VideoURL: videoURL,
	}
	if err := config.DB.Create(&video).Error; err != nil {
		utils.LogError("Failed to create branding video: %v", err)
		utils.InternalServerError(c, "Failed to create branding video", err.Error())
		return
	}

	utils.LogInfo("Created branding video %d", video.ID)
	utils.Created(c, "Branding video created", gin.H{"video": video})
}

// GET /v1/home/branding
func ListBrandingVideos(c *gin.Context) {
	var videos []models.BrandingVideo
	if err := config.DB.Order("created_at DESC").Find(&videos).Error; err != nil {
		utils.LogError("Failed to list branding videos: %v", err)
		utils.InternalServerError(c, "Failed to fetch branding videos", err.Error())
		return
	}
	utils.Success(c, "Branding videos retrieved", gin.H{"videos": videos})
}

// DELETE /v1/admin/home/branding/:id
func DeleteBrandingVideo(c *gin.Context) {
	deleteContentRow(c, &models.BrandingVideo{}, "Branding video")
}

// POST /v1/admin/home/certificates
func CreateCertificate(c *gin.Context) {
	imageURL, err := resolveUpload(c, "image", "image_url", "uploads/certificates", false)
	if err != nil {
		utils.BadRequest(c, "Invalid image upload", err.Error())
		return
	}
	if imageURL == "" {
		utils.BadRequest(c, "Image is required", "provide an image file or image_url")
		return
	}

	name := utils.SanitizeString(c.PostForm("name"))
	if name == "" {
		utils.BadRequest(c, "Name is required", nil)
		return
	}

	cert := models.Certificate{Name: name, ImageURL: imageURL}
	if err := config.DB.Create(&cert).Error; err != nil {
		utils.LogError("Failed to create certificate: %v", err)
		utils.InternalServerError(c, "Failed to create certificate", err.Error())
		return
	}

	utils.LogInfo("Created certificate %d", cert.ID)
	utils.Created(c, "Certificate created", gin.H{"certificate": cert})
}

// GET /v1/home/certificates
func ListCertificates(c *gin.Context) {
	var certs []models.Certificate
	if err := config.DB.Order("created_at DESC").Find(&certs).Error; err != nil {
		utils.LogError("Failed to list certificates: %v", err)
		utils.InternalServerError(c, "Failed to fetch certificates", err.Error())
		return
	}
	utils.Success(c, "Certificates retrieved", gin.H{"certificates": certs})
}

// DELETE /v1/admin/home/certificates/:id
func DeleteCertificate(c *gin.Context) {
	deleteContentRow(c, &models.Certificate{}, "Certificate")
}

// POST /v1/admin/home/help-earn-categories
func CreateHelpEarnCategory(c *gin.Context) {
	imageURL, err := resolveUpload(c, "image", "image_url", "uploads/help-earn", false)
	if err != nil {
		utils.BadRequest(c, "Invalid image upload", err.Error())
		return
	}

	category := models.HelpEarnCategory{ImageURL: imageURL}
	if name := utils.SanitizeString(c.PostForm("name")); name != "" {
		category.Name = name
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create help & earn category: %v", err)
		utils.InternalServerError(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Created help & earn category %d", category.ID)
	utils.Created(c, "Category created", gin.H{"category": category})
}

// GET /v1/home/help-earn-categories
func ListHelpEarnCategories(c *gin.Context) {
	var categories []models.HelpEarnCategory
	if err := config.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to list help & earn categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}
	utils.Success(c, "Categories retrieved", gin.H{"categories": categories})
}

// DELETE /v1/admin/home/help-earn-categories/:id
func DeleteHelpEarnCategory(c *gin.Context) {
	deleteContentRow(c, &models.HelpEarnCategory{}, "Category")
}

// deleteContentRow looks up a content row by the :id param and removes
// it, keeping the six stores' delete handlers identical.
func deleteContentRow(c *gin.Context, model interface{}, label string) {
	result := config.DB.First(model, c.Param("id"))
	if result.Error != nil {
		utils.NotFound(c, label+" not found")
		return
	}

	if err := config.DB.Delete(model).Error; err != nil {
		utils.LogError("Failed to delete %s %s: %v", label, c.Param("id"), err)
		utils.InternalServerError(c, "Failed to delete "+label, err.Error())
		return
	}

	utils.LogInfo("Deleted %s %s", label, c.Param("id"))
	utils.Success(c, label+" deleted", nil)
}
