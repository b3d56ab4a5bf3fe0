// File: controllers/ws.controller.go
package controllers

import (
	"github.com/gin-gonic/gin"

	"cardhaven-backend/internal/ws"
)

// ServeWS menangani upgrade koneksi viewer ke WebSocket untuk menerima
// siaran perubahan katalog.
func (ctrl *Controller) ServeWS(c *gin.Context) {
	if err := ws.ServeWS(ctrl.Hub, c.Writer, c.Request); err != nil {
		ctrl.Log.Errorw("websocket upgrade failed", "err", err)
	}
}
