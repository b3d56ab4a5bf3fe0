// File: controllers/upload.controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardhaven-backend/models"
)

// UploadImage menangani unggah gambar produk ke Cloudinary. Endpoint ini
// hanya aktif jika CLOUDINARY_URL dikonfigurasi; tanpa itu field image cukup
// diisi URL langsung.
func (ctrl *Controller) UploadImage(c *gin.Context) {
	if ctrl.Cld == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	var req models.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data required"})
		return
	}

	url, err := ctrl.uploadToCloudinary(req.Image)
	if err != nil {
		ctrl.Log.Errorw("cloudinary upload failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
