package controllers

import (
	"net/http"

	"linkforge/internal/models"
	"linkforge/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	linkService service.LinkService
}

func NewAnalyticsController(linkService service.LinkService) *AnalyticsController {
	return &AnalyticsController{linkService: linkService}
}

// Summary handles GET /api/v1/analytics
func (ac *AnalyticsController) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, ac.linkService.Analytics())
}

// GetDarkMode handles GET /api/v1/preferences/darkmode
func (ac *AnalyticsController) GetDarkMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dark_mode": ac.linkService.DarkMode()})
}

// SetDarkMode handles PUT /api/v1/preferences/darkmode
func (ac *AnalyticsController) SetDarkMode(c *gin.Context) {
	var req models.DarkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	ac.linkService.SetDarkMode(*req.DarkMode)
	c.JSON(http.StatusOK, gin.H{"dark_mode": *req.DarkMode})
}
