package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"cardhaven-backend/models"
)

// Notifier menerima event perubahan katalog. Store memanggilnya selagi masih
// memegang write lock, sehingga urutan event selalu sama dengan urutan mutasi
// yang diterapkan.
type Notifier interface {
	ProductAdded(p models.Product)
	ProductUpdated(p models.Product)
	ProductDeleted(id string)
}

// Store memiliki katalog produk dan kredensial admin. Semua state hidup di
// memori proses; restart memulai ulang dari katalog seed. Pemanggil hanya
// menerima salinan, tidak pernah referensi ke tabel internal.
type Store struct {
	mu       sync.RWMutex
	products map[string]models.Product
	admins   map[string]models.Admin
	notifier Notifier
}

// New mengembalikan store yang sudah terisi katalog seed. Notifier boleh nil
// jika tidak ada viewer yang perlu diberi tahu.
func New(notifier Notifier) *Store {
	s := &Store{
		products: make(map[string]models.Product),
		admins:   make(map[string]models.Admin),
		notifier: notifier,
	}
	for _, p := range seedProducts() {
		s.products[p.ID] = p
	}
	return s
}

// clone menyalin produk beserta slice tags-nya agar pemanggil tidak pernah
// memegang referensi ke array yang disimpan di tabel.
func clone(p models.Product) models.Product {
	p.Tags = append([]string{}, p.Tags...)
	return p
}

// ListProducts mengembalikan semua produk, terbaru lebih dulu.
func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetProduct mencari satu produk. ID yang tidak dikenal adalah hasil normal,
// bukan error.
func (s *Store) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	return clone(p), true
}

// CreateProduct memberikan id dan timestamp baru, mengisi default untuk
// setiap field opsional yang tidak dikirim, lalu menyimpan hasilnya. Event
// product_added dikirim sebelum lock dilepas.
func (s *Store) CreateProduct(input models.ProductInput) models.Product {
	p := models.Product{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Rating:      models.DefaultRating,
		Reviews:     0,
		Featured:    false,
		Type:        input.Type,
		Category:    input.Category,
		JoinLink:    input.JoinLink,
		CreatedAt:   time.Now(),
	}
	if p.Price == "" {
		p.Price = models.DefaultPrice
	}
	if p.Image == "" {
		p.Image = models.DefaultImage
	}
	// Salin slice agar pemanggil tidak menyimpan referensi ke tabel.
	p.Tags = append([]string{}, input.Tags...)
	if input.Rating != nil {
		p.Rating = *input.Rating
	}
	if input.Reviews != nil {
		p.Reviews = *input.Reviews
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if p.Type == "" {
		p.Type = models.DefaultType
	}
	if p.Category == "" {
		p.Category = models.DefaultCategory
	}
	if p.JoinLink == "" {
		p.JoinLink = models.DefaultJoinLink
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
	if s.notifier != nil {
		s.notifier.ProductAdded(clone(p))
	}
	return clone(p)
}

// UpdateProduct menimpa field yang dikirim pada record yang ada. Field yang
// tidak dikirim tidak berubah; id dan createdAt tidak pernah terpengaruh.
// Mengembalikan false jika id tidak dikenal; event product_updated hanya
// dikirim untuk mutasi yang berhasil.
func (s *Store) UpdateProduct(id string, upd models.ProductUpdate) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	if upd.Tags != nil {
		p.Tags = append([]string{}, (*upd.Tags)...)
	}
	if upd.Rating != nil {
		p.Rating = *upd.Rating
	}
	if upd.Reviews != nil {
		p.Reviews = *upd.Reviews
	}
	if upd.Featured != nil {
		p.Featured = *upd.Featured
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.JoinLink != nil {
		p.JoinLink = *upd.JoinLink
	}

	s.products[id] = p
	if s.notifier != nil {
		s.notifier.ProductUpdated(clone(p))
	}
	return clone(p), true
}

// DeleteProduct menghapus record dan melaporkan apakah ada yang terhapus.
// ID tidak pernah dipakai ulang; produk baru selalu mendapat uuid baru.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.products[id]
	if !ok {
		return false
	}
	delete(s.products, id)
	if s.notifier != nil {
		s.notifier.ProductDeleted(id)
	}
	return true
}

// CountProducts mengembalikan jumlah produk yang hidup.
func (s *Store) CountProducts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.products)
}

// GetAdmin mencari kredensial yang tersimpan untuk sebuah username.
func (s *Store) GetAdmin(username string) (models.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.admins[username]
	return a, ok
}

// CreateAdmin menyimpan kredensial untuk sebuah username.
func (s *Store) CreateAdmin(username, password string) models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Admin{Username: username, Password: password}
	s.admins[username] = a
	return a
}

// SetAdminPassword menimpa kredensial tanpa syarat, membuatnya jika belum
// ada.
func (s *Store) SetAdminPassword(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admins[username] = models.Admin{Username: username, Password: password}
}
