package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"cardhaven-backend/models"
)

// Jenis event yang dikirim ke viewer setelah mutasi katalog berhasil.
const (
	EventProductAdded   = "product_added"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
)

// Event adalah frame yang dikirim lewat kanal live-update.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub memelihara himpunan koneksi viewer aktif dan menyiarkan event katalog
// ke semuanya. Pengiriman bersifat fire-and-forget: tidak ada antrean dan
// tidak ada replay; viewer yang terhubung belakangan mengandalkan full fetch
// awalnya.
type Hub struct {
	// Koneksi viewer yang terdaftar.
	clients map[*Client]bool

	// Permintaan registrasi dari client.
	Register chan *Client

	// Permintaan deregistrasi dari client.
	Unregister chan *Client

	// Frame event keluar yang akan disebarkan.
	broadcast chan []byte

	// Mutex melindungi penghitung viewer yang dibaca endpoint stats.
	mu      sync.Mutex
	viewers int

	log *zap.SugaredLogger
}

func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		log:        log,
	}
}

// Run memiliki himpunan client. Semua registrasi dan fan-out lewat loop ini,
// sehingga siaran diproses berurutan sesuai urutan masuknya.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			h.setViewers(len(h.clients))
			h.log.Infow("viewer connected", "viewers", len(h.clients))
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.setViewers(len(h.clients))
				h.log.Infow("viewer disconnected", "viewers", len(h.clients))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Viewer yang macet dilepas. Dia akan
					// reconnect dan refetch sendiri.
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.setViewers(len(h.clients))
		}
	}
}

// BroadcastEvent menyerialisasi event dan menyerahkannya ke loop fan-out.
// Pemanggil memblokir sampai loop menerima frame, sehingga urutan siaran
// mengikuti urutan pemanggilan.
func (h *Hub) BroadcastEvent(eventType string, data any) {
	frame, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		h.log.Errorw("failed to marshal event", "type", eventType, "err", err)
		return
	}
	h.broadcast <- frame
}

// ProductAdded, ProductUpdated dan ProductDeleted membuat Hub memenuhi
// kontrak notifier milik store: store memanggilnya selagi memegang write
// lock, jadi frame masuk antrean persis dalam urutan serialisasi mutasi.
func (h *Hub) ProductAdded(p models.Product) {
	h.BroadcastEvent(EventProductAdded, p)
}

func (h *Hub) ProductUpdated(p models.Product) {
	h.BroadcastEvent(EventProductUpdated, p)
}

func (h *Hub) ProductDeleted(id string) {
	h.BroadcastEvent(EventProductDeleted, map[string]string{"id": id})
}

// Viewers melaporkan berapa koneksi viewer yang sedang terdaftar.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewers
}

func (h *Hub) setViewers(n int) {
	h.mu.Lock()
	h.viewers = n
	h.mu.Unlock()
}
