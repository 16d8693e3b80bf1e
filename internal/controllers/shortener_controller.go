package controllers

import (
	"errors"
	"net/http"

	"linkforge/internal/models"
	"linkforge/internal/service"

	"github.com/gin-gonic/gin"
)

type ShortenerController struct {
	linkService service.LinkService
}

func NewShortenerController(linkService service.LinkService) *ShortenerController {
	return &ShortenerController{linkService: linkService}
}

// Shorten handles POST /api/v1/shorten
func (sc *ShortenerController) Shorten(c *gin.Context) {
	var req models.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := sc.linkService.Shorten(c.Request.Context(), &req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Reason})
		case errors.Is(err, service.ErrAliasTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to shorten URL"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListURLs handles GET /api/v1/urls
func (sc *ShortenerController) ListURLs(c *gin.Context) {
	c.JSON(http.StatusOK, sc.linkService.Links())
}

// DeleteURL handles DELETE /api/v1/urls/:id
func (sc *ShortenerController) DeleteURL(c *gin.Context) {
	if err := sc.linkService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "URL deleted successfully"})
}

// SimulateClick handles POST /api/v1/urls/:id/click
func (sc *ShortenerController) SimulateClick(c *gin.Context) {
	resp, err := sc.linkService.SimulateClick(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SimulateScan handles POST /api/v1/urls/:id/scan
func (sc *ShortenerController) SimulateScan(c *gin.Context) {
	resp, err := sc.linkService.SimulateScan(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
