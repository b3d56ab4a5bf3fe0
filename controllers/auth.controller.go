// File: controllers/auth.controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cardhaven-backend/models"
)

// Username admin bersifat tetap; password default dipakai untuk provisi
// otomatis saat login pertama. Perilaku mockup ini dipertahankan apa adanya.
const (
	adminUsername        = "admin"
	defaultAdminPassword = "admin123"
)

// Login menangani proses login admin. Jika kredensial belum ada, login
// dengan password default akan membuatnya; password lain ditolak tanpa
// membuat apa pun.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, ok := ctrl.Store.GetAdmin(adminUsername)
	if !ok {
		if req.Password == defaultAdminPassword {
			ctrl.Store.CreateAdmin(adminUsername, req.Password)
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if admin.Password == req.Password {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
}

// ResetPassword menangani penggantian password admin. Kredensial ditimpa
// tanpa syarat, dibuat jika belum ada.
func (ctrl *Controller) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password required"})
		return
	}

	ctrl.Store.SetAdminPassword(adminUsername, req.NewPassword)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
