package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

func ListMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func MenuItemsByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := config.DB.Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func FeaturedMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := config.DB.Where("featured = ?", true).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func CreateMenuItem(item *models.MenuItem) error {
	item.ID = 0
	return config.DB.Create(item).Error
}

// UpdateMenuItem replaces every mutable field of the existing row. Menu items
// use full-replace semantics, unlike category updates which merge.
func UpdateMenuItem(id uint, incoming models.MenuItem) (*models.MenuItem, error) {
	item, err := GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	item.Name = incoming.Name
	item.Description = incoming.Description
	item.Price = incoming.Price
	item.ImageURL = incoming.ImageURL
	item.Category = incoming.Category
	item.Featured = incoming.Featured
	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func DeleteMenuItem(id uint) error {
	item, err := GetMenuItem(id)
	if err != nil {
		return err
	}
	return config.DB.Delete(item).Error
}
