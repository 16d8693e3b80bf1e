package controllers

import (
	"fmt"
	"net/http"

	"linkforge/internal/models"
	"linkforge/internal/service"

	"github.com/gin-gonic/gin"
)

type QRCodeController struct {
	qrService service.QRCodeService
}

func NewQRCodeController(qrService service.QRCodeService) *QRCodeController {
	return &QRCodeController{qrService: qrService}
}

// Generate handles POST /api/v1/qrcodes
func (qc *QRCodeController) Generate(c *gin.Context) {
	var req models.GenerateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := qc.qrService.Generate(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/qrcodes
func (qc *QRCodeController) List(c *gin.Context) {
	c.JSON(http.StatusOK, qc.qrService.List())
}

// SimulateScan handles POST /api/v1/qrcodes/:id/scan
func (qc *QRCodeController) SimulateScan(c *gin.Context) {
	resp, err := qc.qrService.Scan(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Download handles GET /api/v1/qrcodes/:id/image - serves the PNG as a file
// download
func (qc *QRCodeController) Download(c *gin.Context) {
	id := c.Param("id")
	png, err := qc.qrService.Image(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "QR code not found"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=qrcode-%s.png", id))
	c.Data(http.StatusOK, "image/png", png)
}
