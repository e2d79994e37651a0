package services

import (
	"log"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

var defaultCategories = []string{
	"Breakfast", "Drinks", "Desserts", "Sandwiches",
	"Extras", "Sides", "Dinner", "Kids", "Salads",
}

var defaultHours = []models.RestaurantHours{
	{DayOfWeek: "Monday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 1},
	{DayOfWeek: "Tuesday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 2},
	{DayOfWeek: "Wednesday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 3},
	{DayOfWeek: "Thursday", OpenTime: "11:00 AM", CloseTime: "9:00 PM", SortOrder: 4},
	{DayOfWeek: "Friday", OpenTime: "11:00 AM", CloseTime: "10:00 PM", SortOrder: 5},
	{DayOfWeek: "Saturday", OpenTime: "11:00 AM", CloseTime: "10:00 PM", SortOrder: 6},
	{DayOfWeek: "Sunday", Closed: true, SortOrder: 7},
}

// Seed populates default rows once at startup. Every step is gated on an
// empty-table (or missing-row) check, so rerunning it is a no-op.
func Seed() error {
	if err := seedCategories(); err != nil {
		return err
	}
	if err := seedHours(); err != nil {
		return err
	}
	if _, err := GetSettings(); err != nil {
		return err
	}
	return seedBootstrapAdmin()
}

func seedCategories() error {
	var count int64
	if err := config.DB.Model(&models.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i, name := range defaultCategories {
		category := models.MenuCategory{Name: name, SortOrder: i + 1}
		if err := config.DB.Create(&category).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded default menu categories")
	return nil
}

func seedHours() error {
	var count int64
	if err := config.DB.Model(&models.RestaurantHours{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, row := range defaultHours {
		if err := config.DB.Create(&row).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded default restaurant hours")
	return nil
}

// seedBootstrapAdmin creates the initial admin account from configuration so
// a fresh deployment has a way to log in. Skipped when credentials are unset
// or any admin already exists.
func seedBootstrapAdmin() error {
	cfg := config.App
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}
	var count int64
	if err := config.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if _, err := CreateAdminUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}
	log.Println("Created bootstrap admin user", cfg.AdminUsername)
	return nil
}
