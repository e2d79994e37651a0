package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// SubmitContact persists the message, then notifies the configured admin
// address. Mail failures are logged only; the submission itself has succeeded.
func SubmitContact(msg *models.ContactMessage) error {
	msg.ID = 0
	if err := config.DB.Create(msg).Error; err != nil {
		return err
	}
	if err := SendContactNotification(msg); err != nil {
		log.Println("Contact notification mail failed:", err)
	}
	return nil
}

func ListContacts() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := config.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func DeleteContact(id uint) error {
	var msg models.ContactMessage
	if err := config.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("contact message %d: %w", id, ErrNotFound)
		}
		return err
	}
	return config.DB.Delete(&msg).Error
}
