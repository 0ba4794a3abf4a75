package handlers

import (
	"net/http"

	"flash_sale_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// GetProducts retourne le catalogue complet après un délai simulé
func (h *Handler) GetProducts(c *gin.Context) {
	h.ProductsLatency.Simulate(c.Request.Context())

	products := h.Catalog()

	c.JSON(http.StatusOK, models.APIResponse{
		Success:   true,
		Message:   "Products retrieved successfully",
		Data:      products,
		Timestamp: timestamp(),
	})
}
