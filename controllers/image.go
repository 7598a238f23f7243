package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hairlab-backoffice/backend"
	"hairlab-backoffice/config"
	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

const (
	MaxCarouselImages = 2
	MaxImageBytes     = 5_000_000
)

type ImageController struct {
	client *backend.Client
	site   *config.SiteContent
}

// NewImageController manages the home page carousel. site supplies the
// default address and phone shown on each slide.
func NewImageController(client *backend.Client, site *config.SiteContent) *ImageController {
	if site == nil {
		site = &config.SiteContent{}
	}
	return &ImageController{client: client, site: site}
}

// List is served publicly for the home page and to the image manager.
func (ic *ImageController) List(c *gin.Context) {
	client := ic.client
	if auth, ok := utils.CurrentAuth(c); ok {
		client = client.WithToken(auth.Token)
	}
	images, err := client.ListCarouselImages(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch carousel images")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ic *ImageController) Upload(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	file, err := c.FormFile("image")
	if title == "" || err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all required fields")
		return
	}
	if file.Size > MaxImageBytes {
		utils.RespondWithError(c, http.StatusBadRequest, "File size should not exceed 5MB")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, http.StatusBadRequest, "Please select an image file")
		return
	}

	client := ic.client.WithToken(auth.Token)
	existing, err := client.ListCarouselImages(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch carousel images")
		return
	}
	if len(existing) >= MaxCarouselImages {
		utils.RespondWithError(c, http.StatusConflict, "Maximum 2 images allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read file")
		return
	}
	defer src.Close()

	img, err := client.UploadCarouselImage(c.Request.Context(), backend.ImageUpload{
		Title:       title,
		Address:     c.DefaultPostForm("address", ic.site.Address),
		Phone:       c.DefaultPostForm("phone", ic.site.Phone),
		Filename:    file.Filename,
		ContentType: contentType,
		Data:        src,
	})
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully", "image": img})
}

func (ic *ImageController) Update(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}

	var input models.CarouselImageUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Title cannot be empty")
		return
	}

	img, err := ic.client.WithToken(auth.Token).UpdateCarouselImage(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Failed to update image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image updated successfully", "image": img})
}

func (ic *ImageController) Delete(c *gin.Context) {
	auth, ok := currentAuth(c)
	if !ok {
		return
	}
	if err := ic.client.WithToken(auth.Token).DeleteCarouselImage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}

func (ic *ImageController) Register(g *gin.RouterGroup) {
	g.GET("", ic.List)
	g.POST("", ic.Upload)
	g.PUT("/:id", ic.Update)
	g.DELETE("/:id", ic.Delete)
}
