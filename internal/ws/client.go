package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Batas waktu menulis satu pesan ke peer.
	writeWait = 10 * time.Second

	// Batas waktu menunggu pong berikutnya dari peer.
	pongWait = 60 * time.Second

	// Periode ping ke peer. Harus lebih kecil dari pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Ukuran pesan maksimum yang diizinkan dari peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Storefront disajikan dari origin lain saat development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client adalah perantara antara koneksi websocket dan hub.
type Client struct {
	Hub *Hub

	// Koneksi websocket.
	Conn *websocket.Conn

	// Channel ber-buffer untuk pesan keluar.
	Send chan []byte
}

// ServeWS meng-upgrade request HTTP menjadi koneksi websocket dan
// mendaftarkan viewer baru ke hub.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256)}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
	return nil
}

// ReadPump memompa pesan dari koneksi websocket ke hub. Viewer tidak pernah
// mengirim pesan aplikasi; loop baca ada untuk mendeteksi pong dan putusnya
// koneksi.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// WritePump memompa pesan dari hub ke koneksi websocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub menutup channel ini.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
