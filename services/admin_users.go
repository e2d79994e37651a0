package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// Authenticate checks the supplied credentials against the stored bcrypt hash
// and returns the matching admin. Unknown usernames and bad passwords are
// indistinguishable to the caller.
func Authenticate(username, password string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bad credentials: %w", ErrNotFound)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("bad credentials: %w", ErrNotFound)
	}
	return &user, nil
}

func ListAdminUsers() ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := config.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func CreateAdminUser(username, password string) (*models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidInput)
	}

	var existing models.AdminUser
	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("username %q: %w", username, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.AdminUser{Username: username, PasswordHash: string(hash)}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteAdminUser(id uint) error {
	var user models.AdminUser
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("admin user %d: %w", id, ErrNotFound)
		}
		return err
	}
	return config.DB.Delete(&user).Error
}
