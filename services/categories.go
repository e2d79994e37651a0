package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

func ListCategories() ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	if err := config.DB.Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory trims the name and, when no sort order was supplied, appends
// the category after the current maximum.
func CreateCategory(name string, sortOrder *int) (*models.MenuCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}

	category := models.MenuCategory{Name: name}
	if sortOrder != nil {
		category.SortOrder = *sortOrder
	} else {
		var last models.MenuCategory
		err := config.DB.Order("sort_order desc").First(&last).Error
		switch {
		case err == nil:
			category.SortOrder = last.SortOrder + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
			category.SortOrder = 1
		default:
			return nil, err
		}
	}

	if err := config.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory merges only the provided fields onto the existing row:
// a non-blank name (trimmed) and a non-nil sort order.
func UpdateCategory(id uint, name string, sortOrder *int) (*models.MenuCategory, error) {
	var category models.MenuCategory
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		category.Name = trimmed
	}
	if sortOrder != nil {
		category.SortOrder = *sortOrder
	}

	if err := config.DB.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
