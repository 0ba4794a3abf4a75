package handlers

import (
	"log"
	"net/http"
	"time"

	"flash_sale_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	livePingInterval = 30 * time.Second
	liveWriteWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Même politique que le CORS : toutes les origines
		return true
	},
}

// OrdersLive relaie en temps réel les commandes confirmées publiées sur Redis
func (h *Handler) OrdersLive(c *gin.Context) {
	if h.Events == nil {
		respondError(c, http.StatusNotFound, "Live feed disabled", "")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	pubsub := h.Events.Subscribe(ctx)
	defer pubsub.Close()

	// On attend la confirmation d'abonnement avant d'annoncer la connexion
	if _, err := pubsub.Receive(ctx); err != nil {
		log.Printf("❌ Abonnement Redis échoué: %v", err)
		return
	}
	ch := pubsub.Channel()

	// Lecture en tâche de fond pour détecter la fermeture côté client
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeJSON(conn, gin.H{"type": "connected", "message": "Live order feed"}); err != nil {
		return
	}

	ticker := time.NewTicker(livePingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			ev, err := services.DecodeOrderEvent(msg.Payload)
			if err != nil {
				log.Printf("⚠️ %v", err)
				continue
			}
			if err := writeJSON(conn, gin.H{
				"type":        "order_confirmed",
				"orderId":     ev.OrderID,
				"itemCount":   ev.ItemCount,
				"totalAmount": ev.TotalAmount,
				"createdAt":   ev.CreatedAt,
			}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return conn.WriteJSON(v)
}
