package services

import (
	"context"
	"testing"
	"time"

	"flash_sale_back_end/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestOrderEvents_PublishSubscribe(t *testing.T) {
	client, _ := setupTestRedis(t)
	events := NewOrderEvents(client)
	ctx := context.Background()

	sub := events.Subscribe(ctx)
	defer sub.Close()
	_, err := sub.Receive(ctx) // confirmation d'abonnement
	require.NoError(t, err)

	order := &models.Order{
		OrderID:       uuid.New(),
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		CustomerEmail: "secret@shop.io",
		Items:         []models.LineItem{{ID: "a", Price: 10, Quantity: 2}},
		TotalAmount:   20,
		Status:        models.OrderStatusConfirmed,
	}
	require.NoError(t, events.PublishOrder(ctx, order))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, OrderEventsChannel, msg.Channel)
		assert.NotContains(t, msg.Payload, "secret@shop.io")

		ev, err := DecodeOrderEvent(msg.Payload)
		require.NoError(t, err)
		assert.Equal(t, order.OrderID.String(), ev.OrderID)
		assert.Equal(t, 1, ev.ItemCount)
		assert.Equal(t, 20.0, ev.TotalAmount)
		assert.Equal(t, "2026-01-01T00:00:00Z", ev.CreatedAt)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}

func TestOrderEvents_PublishError(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	err := NewOrderEvents(client).PublishOrder(context.Background(), &models.Order{OrderID: uuid.New()})
	assert.Error(t, err)
}

func TestDecodeOrderEvent_Invalid(t *testing.T) {
	_, err := DecodeOrderEvent("not json")
	assert.Error(t, err)
}
