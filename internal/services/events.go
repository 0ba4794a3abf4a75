package services

import (
	"context"
	"encoding/json"
	"fmt"

	"flash_sale_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

const OrderEventsChannel = "orders:confirmed"

// OrderEvents publie et écoute les commandes confirmées via Redis pub/sub
type OrderEvents struct {
	client  *redis.Client
	channel string
}

var _ OrderPublisher = (*OrderEvents)(nil)

func NewOrderEvents(client *redis.Client) *OrderEvents {
	return &OrderEvents{client: client, channel: OrderEventsChannel}
}

func (e *OrderEvents) PublishOrder(ctx context.Context, order *models.Order) error {
	payload, err := json.Marshal(order.Event())
	if err != nil {
		return fmt.Errorf("sérialisation événement: %w", err)
	}
	return e.client.Publish(ctx, e.channel, payload).Err()
}

// Subscribe ouvre un abonnement ; l'appelant doit fermer le PubSub
func (e *OrderEvents) Subscribe(ctx context.Context) *redis.PubSub {
	return e.client.Subscribe(ctx, e.channel)
}

// DecodeOrderEvent décode un message reçu sur le canal
func DecodeOrderEvent(payload string) (models.OrderEvent, error) {
	var ev models.OrderEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return models.OrderEvent{}, fmt.Errorf("événement invalide: %w", err)
	}
	return ev, nil
}
