package handlers

import (
	"errors"
	"log"
	"net/http"

	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidCart   = "Invalid cart data"
	msgOrderFailed   = "Failed to create order"
	msgOrderAccepted = "Order created successfully"
)

// CreateOrder valide le panier, calcule le total et enregistre la commande
func (h *Handler) CreateOrder(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidCart, "")
		return
	}

	req, err := services.ParseCheckout(body)
	if err != nil {
		log.Printf("⚠️ Panier refusé: %v", err)
		respondError(c, http.StatusBadRequest, msgInvalidCart, "")
		return
	}

	order, err := h.Orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCart) {
			respondError(c, http.StatusBadRequest, msgInvalidCart, "")
			return
		}
		log.Printf("❌ Erreur création commande: %v", err)
		respondError(c, http.StatusInternalServerError, msgOrderFailed, err.Error())
		return
	}

	c.JSON(http.StatusCreated, models.APIResponse{
		Success:   true,
		Message:   msgOrderAccepted,
		Data:      order.Summary(),
		Timestamp: timestamp(),
	})
}
