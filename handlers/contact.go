package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/models"
	"restaurant-backend/services"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores a public contact-form submission.
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg := models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := services.SubmitContact(&msg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func ListContacts(c *gin.Context) {
	messages, err := services.ListContacts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteContact(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
