package main

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"

	"cardhaven-backend/config"
	"cardhaven-backend/controllers"
	"cardhaven-backend/internal/ws"
	"cardhaven-backend/routes"
	"cardhaven-backend/store"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Cloudinary opsional; tanpa konfigurasi, unggah gambar dinonaktifkan
	// dan field image diisi URL langsung.
	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			sugar.Fatalw("failed to init cloudinary", "err", err)
		}
	}

	// Hub harus berjalan sebelum store menerima mutasi, karena store
	// menyiarkan setiap mutasi yang berhasil lewat hub.
	hub := ws.NewHub(sugar)
	go hub.Run()
	s := store.New(hub)

	ctrl := controllers.New(s, hub, cld, sugar)
	r := routes.Setup(ctrl, cfg.Env, cfg.AllowedOrigins)

	sugar.Infow("starting server",
		"port", cfg.Port,
		"env", cfg.Env,
		"seed_products", s.CountProducts(),
		"uploads_enabled", cld != nil,
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("server stopped", "err", err)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
