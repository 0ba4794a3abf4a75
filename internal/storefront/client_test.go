package storefront

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flash_sale_back_end/internal/database"
	"flash_sale_back_end/internal/handlers"
	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/services"
	"flash_sale_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAPIServer démarre le vrai routeur gin avec un store mémoire
func newAPIServer(t *testing.T) (*httptest.Server, *database.MemoryOrderStore) {
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryOrderStore()
	orders := services.NewOrderService(store, 30*24*time.Hour)
	h := handlers.New(orders, store, utils.Latency{}, nil)

	r := gin.New()
	r.GET("/products", h.GetProducts)
	r.POST("/orders", h.CreateOrder)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func TestClient_FetchProducts(t *testing.T) {
	srv, _ := newAPIServer(t)
	client := NewClient(srv.URL+"/", nil)

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 6)
}

func TestClient_PlaceOrder(t *testing.T) {
	srv, store := newAPIServer(t)
	client := NewClient(srv.URL, nil)

	summary, err := client.PlaceOrder(context.Background(), models.CheckoutRequest{
		Cart: []models.LineItem{
			{ID: "a", Name: "A", Price: 10, Quantity: 2},
			{ID: "b", Name: "B", Price: 5, Quantity: 1},
		},
		CustomerEmail: "buyer@shop.io",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, summary.OrderID)
	assert.Equal(t, 25.00, summary.TotalAmount)
	assert.Equal(t, 1, store.Len())
}

func TestClient_PlaceOrderRejected(t *testing.T) {
	srv, store := newAPIServer(t)
	client := NewClient(srv.URL, nil)

	_, err := client.PlaceOrder(context.Background(), models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, 0, store.Len())
}

func TestClient_SendsCheckoutPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"orderId":"abc","totalAmount":10}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).PlaceOrder(context.Background(), models.CheckoutRequest{
		Cart:          []models.LineItem{{ID: "a", Name: "A", Price: 10, Quantity: 1}},
		CustomerEmail: DefaultCustomerEmail,
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultCustomerEmail, got["customerEmail"])
	cart := got["cart"].([]any)
	require.Len(t, cart, 1)
	assert.Equal(t, map[string]any{"id": "a", "name": "A", "price": 10.0, "quantity": 1.0}, cart[0])
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Failed to fetch products"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).FetchProducts(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}
