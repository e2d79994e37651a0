package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RestaurantInfo is a small public greeting used as an API smoke check.
func RestaurantInfo(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the restaurant API")
}
