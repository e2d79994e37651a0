package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/models"
	"restaurant-backend/services"
)

func ListHours(c *gin.Context) {
	hours, err := services.ListHours()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

type HoursRequest struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	Closed    bool   `json:"closed"`
}

func UpdateHoursRow(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req HoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := services.UpdateHoursRow(id, models.RestaurantHours{
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		Closed:    req.Closed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpdateHoursBulk saves a whole week at once. Entries without a matching row
// are skipped; the response is the resulting full list.
func UpdateHoursBulk(c *gin.Context) {
	var updates []services.HoursUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hours, err := services.UpdateHoursBulk(updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}
