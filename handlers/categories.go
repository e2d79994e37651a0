package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/services"
)

// CategoryRequest carries both create and partial-update payloads. SortOrder
// is a pointer so "unset" and "zero" stay distinguishable.
type CategoryRequest struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"sortOrder"`
}

func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := services.CreateCategory(req.Name, req.SortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := services.UpdateCategory(id, req.Name, req.SortOrder)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}
