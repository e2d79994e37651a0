package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

func ListHours() ([]models.RestaurantHours, error) {
	var hours []models.RestaurantHours
	if err := config.DB.Order("sort_order asc").Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// UpdateHoursRow overwrites the open/close times and closed flag of one row.
// DayOfWeek and SortOrder are immutable through this path.
func UpdateHoursRow(id uint, incoming models.RestaurantHours) (*models.RestaurantHours, error) {
	var row models.RestaurantHours
	if err := config.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hours row %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	row.OpenTime = incoming.OpenTime
	row.CloseTime = incoming.CloseTime
	row.Closed = incoming.Closed
	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// HoursUpdate is one entry of a bulk hours save. A nil ID or an ID with no
// matching row is skipped without error.
type HoursUpdate struct {
	ID        *uint  `json:"id"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed"`
}

// UpdateHoursBulk applies each matched entry and returns the full list in
// display order.
func UpdateHoursBulk(updates []HoursUpdate) ([]models.RestaurantHours, error) {
	for _, u := range updates {
		if u.ID == nil {
			continue
		}
		var row models.RestaurantHours
		if err := config.DB.First(&row, *u.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		row.OpenTime = u.OpenTime
		row.CloseTime = u.CloseTime
		row.Closed = u.Closed
		if err := config.DB.Save(&row).Error; err != nil {
			return nil, err
		}
	}
	return ListHours()
}
