package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flash_sale_back_end/internal/database"
	"flash_sale_back_end/internal/handlers"
	"flash_sale_back_end/internal/services"
	"flash_sale_back_end/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newRouter(redisClient *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryOrderStore()
	orders := services.NewOrderService(store, time.Hour)
	h := handlers.New(orders, store, utils.Latency{}, nil)

	r := gin.New()
	RegisterRoutes(r, h, redisClient, limit)
	return r
}

func TestPreflight(t *testing.T) {
	r := newRouter(nil, 0)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/orders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestBareOptions(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(nil, 0).ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/anything/at/all", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestCORSOnSimpleRequest(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	newRouter(nil, 0).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitWired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	r := newRouter(client, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"cart":[]}`))
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestCORSConfigValid(t *testing.T) {
	cfg := CORSConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, handlers.AllowedHeaders, cfg.AllowHeaders)
}
