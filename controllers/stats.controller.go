// File: controllers/stats.controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cardhaven-backend/models"
)

// HealthCheck memeriksa status aplikasi.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil data statistik dari aplikasi.
func (ctrl *Controller) GetStats(c *gin.Context) {
	stats := models.Stats{
		TotalProducts:    ctrl.Store.CountProducts(),
		ConnectedViewers: ctrl.Hub.Viewers(),
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
