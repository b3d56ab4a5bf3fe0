// File: controllers/product.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"cardhaven-backend/models"
)

// GetProducts menangani pengambilan semua produk, terbaru lebih dulu.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Store.ListProducts())
}

// GetProduct menangani pengambilan satu produk berdasarkan ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	product, ok := ctrl.Store.GetProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct menangani pembuatan produk baru. Store menyiarkan setiap
// pembuatan yang berhasil ke semua viewer yang sedang terhubung.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data", "details": err.Error()})
		return
	}

	if input.ImageBase64 != "" && ctrl.Cld != nil {
		url, err := ctrl.uploadToCloudinary(input.ImageBase64)
		if err != nil {
			ctrl.Log.Errorw("cloudinary upload failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		input.Image = url
		input.ImageBase64 = ""
	}

	c.JSON(http.StatusCreated, ctrl.Store.CreateProduct(input))
}

// UpdateProduct menangani pembaruan parsial produk. Field yang tidak
// dikirim tidak berubah.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	var upd models.ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data", "details": err.Error()})
		return
	}

	if upd.ImageBase64 != "" && ctrl.Cld != nil {
		url, err := ctrl.uploadToCloudinary(upd.ImageBase64)
		if err != nil {
			ctrl.Log.Errorw("cloudinary upload failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		upd.Image = &url
		upd.ImageBase64 = ""
	}

	product, ok := ctrl.Store.UpdateProduct(c.Param("id"), upd)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct menangani penghapusan produk.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	if !ctrl.Store.DeleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctrl *Controller) uploadToCloudinary(imageBase64 string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.Cld.Upload.Upload(ctx, imageBase64, uploader.UploadParams{Folder: "cardhaven/products"})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
