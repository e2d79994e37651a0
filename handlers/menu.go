package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/models"
	"restaurant-backend/services"
)

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured"`
}

func (r MenuItemRequest) toModel() models.MenuItem {
	return models.MenuItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Featured:    r.Featured,
	}
}

// ListMenu returns every menu item; shared by the public and admin routes.
func ListMenu(c *gin.Context) {
	items, err := services.ListMenuItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func MenuByCategory(c *gin.Context) {
	items, err := services.MenuItemsByCategory(c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func FeaturedMenu(c *gin.Context) {
	items, err := services.FeaturedMenuItems()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := services.GetMenuItem(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := req.toModel()
	if err := services.CreateMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := services.UpdateMenuItem(id, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := services.DeleteMenuItem(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
