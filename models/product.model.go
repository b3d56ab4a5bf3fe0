package models

import "time"

// Nilai default untuk field produk opsional.
const (
	DefaultPrice    = "Free"
	DefaultImage    = "https://placehold.co/800x600?text=Product"
	DefaultRating   = 5
	DefaultType     = "software"
	DefaultCategory = "General"
	DefaultJoinLink = "#"
)

// Product mendefinisikan struktur untuk produk katalog.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Featured    bool      `json:"featured"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	JoinLink    string    `json:"joinLink"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductInput mendefinisikan struktur untuk pembuatan produk baru.
// Field pointer dipakai agar nilai nol bisa dibedakan dari field yang
// tidak dikirim sama sekali.
type ProductInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Featured    *bool    `json:"featured"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	JoinLink    string   `json:"joinLink"`
	ImageBase64 string   `json:"imageBase64,omitempty"`
}

// ProductUpdate mendefinisikan struktur untuk pembaruan parsial produk.
// Hanya field yang dikirim yang menimpa nilai lama; id dan createdAt tidak
// pernah berubah.
type ProductUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
	Featured    *bool     `json:"featured"`
	Type        *string   `json:"type"`
	Category    *string   `json:"category"`
	JoinLink    *string   `json:"joinLink"`
	ImageBase64 string    `json:"imageBase64,omitempty"`
}

// Stats mendefinisikan struktur untuk statistik aplikasi.
type Stats struct {
	TotalProducts    int `json:"total_products"`
	ConnectedViewers int `json:"connected_viewers"`
}
