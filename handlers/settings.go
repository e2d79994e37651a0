package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/services"
)

func GetSettings(c *gin.Context) {
	settings, err := services.GetSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type HeroImageRequest struct {
	HeroImageURL string `json:"heroImageUrl"`
}

func UpdateHeroImage(c *gin.Context) {
	var req HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := services.UpdateHeroImageURL(req.HeroImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UploadHeroImage accepts a multipart form with a "file" field, stores the
// image, and returns the updated settings.
func UploadHeroImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}
	settings, err := services.UpdateHeroImageFile(data, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
