// File: controllers/controller.go
package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"cardhaven-backend/internal/ws"
	"cardhaven-backend/store"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Pastikan field diawali huruf besar agar bisa diakses dari package lain.
type Controller struct {
	Store *store.Store
	Hub   *ws.Hub
	Cld   *cloudinary.Cloudinary
	Log   *zap.SugaredLogger
}

// New membuat Controller dengan semua dependensinya. Cld boleh nil jika
// Cloudinary tidak dikonfigurasi.
func New(s *store.Store, hub *ws.Hub, cld *cloudinary.Cloudinary, log *zap.SugaredLogger) *Controller {
	return &Controller{Store: s, Hub: hub, Cld: cld, Log: log}
}
