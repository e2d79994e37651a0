package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// GetSettings returns the singleton settings row, creating the default one on
// first access. The row lives at a fixed id so repeated calls cannot produce
// a second row.
func GetSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := config.DB.First(&settings, models.SiteSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SiteSettings{ID: models.SiteSettingsID}
		err = config.DB.Create(&settings).Error
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateHeroImageURL sets the hero image. A blank URL clears it.
func UpdateHeroImageURL(url string) (*models.SiteSettings, error) {
	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}
	if trimmed := strings.TrimSpace(url); trimmed == "" {
		settings.HeroImageURL = nil
	} else {
		settings.HeroImageURL = &url
	}
	if err := config.DB.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateHeroImageFile stores an uploaded image under the uploads directory with
// a randomized name and points the hero image at its public path.
func UpdateHeroImageFile(data []byte, originalFilename string) (*models.SiteSettings, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("uploaded file is empty: %w", ErrInvalidInput)
	}

	ext := filepath.Ext(filepath.Base(originalFilename))
	filename := "hero-" + uuid.NewString() + ext
	target := filepath.Join(config.App.UploadsDir, filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return nil, fmt.Errorf("write hero image: %w", err)
	}

	return UpdateHeroImageURL("/uploads/" + filename)
}
