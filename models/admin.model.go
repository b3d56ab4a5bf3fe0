package models

// Admin mendefinisikan struktur untuk kredensial admin. Hanya ada satu
// admin dengan username tetap; password disimpan apa adanya sesuai perilaku
// mockup (tanpa hashing, tanpa sesi).
type Admin struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

// LoginRequest mendefinisikan struktur untuk permintaan login admin.
type LoginRequest struct {
	Password string `json:"password"`
}

// ResetPasswordRequest mendefinisikan struktur untuk permintaan reset
// password admin.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// UploadRequest mendefinisikan struktur untuk permintaan unggah gambar.
type UploadRequest struct {
	Image string `json:"image" binding:"required"`
}
