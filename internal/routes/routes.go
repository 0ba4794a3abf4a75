package routes

import (
	"net/http"

	"flash_sale_back_end/internal/handlers"
	"flash_sale_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CORSConfig : toutes les origines, avec credentials
func CORSConfig() cors.Config {
	return cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:              handlers.AllowedHeaders,
		AllowCredentials:          true,
		OptionsResponseStatusCode: http.StatusOK,
	}
}

// RegisterRoutes branche le CORS, le rate limit et les routes de la boutique.
// redisClient peut être nil : le rate limit est alors désactivé.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, redisClient *redis.Client, rateLimit int) {
	r.Use(cors.New(CORSConfig()))
	r.Use(middleware.APIRateLimit(redisClient, rateLimit))

	r.GET("/health", h.Health)
	r.GET("/products", middleware.Recover("Failed to fetch products"), h.GetProducts)
	r.POST("/orders", middleware.Recover("Failed to create order"), h.CreateOrder)
	r.GET("/orders/live", h.OrdersLive)

	// OPTIONS sans en-tête Origin : le middleware CORS laisse passer, on répond 200 vide
	r.OPTIONS("/*path", handlers.Options)
}
