package handlers

import (
	"net/http"
	"strings"
	"time"

	"flash_sale_back_end/internal/catalog"
	"flash_sale_back_end/internal/database"
	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/services"
	"flash_sale_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler regroupe les dépendances des routes HTTP
type Handler struct {
	Orders          *services.OrderService
	Store           database.OrderStore
	ProductsLatency utils.Latency

	// Events est nil quand Redis n'est pas configuré (flux live désactivé)
	Events *services.OrderEvents

	// Catalog est remplaçable en test
	Catalog func() []models.Product
}

func New(orders *services.OrderService, store database.OrderStore, productsLatency utils.Latency, events *services.OrderEvents) *Handler {
	return &Handler{
		Orders:          orders,
		Store:           store,
		ProductsLatency: productsLatency,
		Events:          events,
		Catalog:         catalog.Products,
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func respondError(c *gin.Context, status int, message, detail string) {
	c.JSON(status, models.APIResponse{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: timestamp(),
	})
}

// AllowedHeaders sont les en-têtes acceptés en CORS
var AllowedHeaders = []string{
	"Content-Type",
	"X-Amz-Date",
	"Authorization",
	"X-Api-Key",
	"X-Amz-Security-Token",
}

// Options répond aux OPTIONS sans Origin (le préflight navigateur est géré par le middleware CORS)
func Options(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Credentials", "true")
	c.Header("Access-Control-Allow-Headers", strings.Join(AllowedHeaders, ","))
	c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	c.Status(http.StatusOK)
}
