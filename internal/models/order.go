package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusConfirmed = "CONFIRMED"

	// AnonymousEmail est utilisé quand le client n'a pas fourni d'email
	AnonymousEmail = "anonymous@example.com"
)

// Order est l'enregistrement persisté, écrit une seule fois et jamais relu
type Order struct {
	OrderID        uuid.UUID  `json:"orderId"`
	CreatedAt      int64      `json:"createdAt"` // epoch ms
	CustomerEmail  string     `json:"customerEmail"`
	Items          []LineItem `json:"items"`
	TotalAmount    float64    `json:"totalAmount"`
	Status         string     `json:"status"`
	ExpirationTime int64      `json:"expirationTime"` // epoch secondes
	Timestamp      string     `json:"timestamp"`
}

// CreatedTime retourne CreatedAt sous forme de time.Time
func (o *Order) CreatedTime() time.Time {
	return time.UnixMilli(o.CreatedAt).UTC()
}

// OrderSummary est la partie "data" de la réponse 201
type OrderSummary struct {
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	ItemCount   int     `json:"itemCount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// OrderEvent est publié sur Redis après l'écriture (jamais l'email du client)
type OrderEvent struct {
	OrderID     string  `json:"orderId"`
	ItemCount   int     `json:"itemCount"`
	TotalAmount float64 `json:"totalAmount"`
	CreatedAt   string  `json:"createdAt"`
}

func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		OrderID:     o.OrderID.String(),
		TotalAmount: o.TotalAmount,
		ItemCount:   len(o.Items),
		Status:      o.Status,
		CreatedAt:   o.CreatedTime().Format(time.RFC3339Nano),
	}
}

func (o *Order) Event() OrderEvent {
	s := o.Summary()
	return OrderEvent{
		OrderID:     s.OrderID,
		ItemCount:   s.ItemCount,
		TotalAmount: s.TotalAmount,
		CreatedAt:   s.CreatedAt,
	}
}
