package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"flash_sale_back_end/internal/database"
	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/utils"

	"github.com/google/uuid"
)

var ErrInvalidCart = errors.New("invalid cart data")

// OrderPublisher diffuse les commandes confirmées (flux live)
type OrderPublisher interface {
	PublishOrder(ctx context.Context, order *models.Order) error
}

// OrderMailer envoie l'email de confirmation
type OrderMailer interface {
	SendOrderConfirmation(order *models.Order) error
}

type OrderService struct {
	store     database.OrderStore
	latency   utils.Latency
	ttl       time.Duration
	publisher OrderPublisher
	mailer    OrderMailer

	now   func() time.Time
	newID func() uuid.UUID
}

type OrderOption func(*OrderService)

func WithLatency(l utils.Latency) OrderOption {
	return func(s *OrderService) { s.latency = l }
}

func WithPublisher(p OrderPublisher) OrderOption {
	return func(s *OrderService) { s.publisher = p }
}

func WithMailer(m OrderMailer) OrderOption {
	return func(s *OrderService) { s.mailer = m }
}

func WithClock(now func() time.Time) OrderOption {
	return func(s *OrderService) { s.now = now }
}

func NewOrderService(store database.OrderStore, ttl time.Duration, opts ...OrderOption) *OrderService {
	s := &OrderService{
		store: store,
		ttl:   ttl,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// rawLineItem : price et quantity sont obligatoires, d'où les pointeurs
type rawLineItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// ParseCheckout valide le body de POST /orders. Toute erreur wrappe ErrInvalidCart.
func ParseCheckout(body []byte) (models.CheckoutRequest, error) {
	var envelope struct {
		Cart          json.RawMessage `json:"cart"`
		CustomerEmail string          `json:"customerEmail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.CheckoutRequest{}, fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}

	cart := strings.TrimSpace(string(envelope.Cart))
	if cart == "" || cart == "null" {
		return models.CheckoutRequest{}, fmt.Errorf("%w: cart manquant", ErrInvalidCart)
	}

	var raw []rawLineItem
	if err := json.Unmarshal(envelope.Cart, &raw); err != nil {
		return models.CheckoutRequest{}, fmt.Errorf("%w: %v", ErrInvalidCart, err)
	}
	if len(raw) == 0 {
		return models.CheckoutRequest{}, fmt.Errorf("%w: panier vide", ErrInvalidCart)
	}

	items := make([]models.LineItem, 0, len(raw))
	for i, r := range raw {
		if r.Price == nil || r.Quantity == nil {
			return models.CheckoutRequest{}, fmt.Errorf("%w: item %d incomplet", ErrInvalidCart, i)
		}
		if *r.Price < 0 || *r.Quantity < 1 {
			return models.CheckoutRequest{}, fmt.Errorf("%w: item %d invalide", ErrInvalidCart, i)
		}
		items = append(items, models.LineItem{
			ID:       r.ID,
			Name:     r.Name,
			Price:    *r.Price,
			Quantity: *r.Quantity,
		})
	}

	// Un total non représentable ferait échouer la réponse après l'écriture
	if total := utils.CartTotal(items); math.IsInf(total, 0) || math.IsNaN(total) {
		return models.CheckoutRequest{}, fmt.Errorf("%w: total hors limites", ErrInvalidCart)
	}

	return models.CheckoutRequest{
		Cart:          items,
		CustomerEmail: strings.TrimSpace(envelope.CustomerEmail),
	}, nil
}

// NewOrder construit l'enregistrement (id, total, expiration) sans l'écrire
func (s *OrderService) NewOrder(req models.CheckoutRequest) *models.Order {
	now := s.now().UTC()

	email := req.CustomerEmail
	if email == "" {
		email = models.AnonymousEmail
	}

	return &models.Order{
		OrderID:        s.newID(),
		CreatedAt:      now.UnixMilli(),
		CustomerEmail:  email,
		Items:          append([]models.LineItem(nil), req.Cart...),
		TotalAmount:    utils.CartTotal(req.Cart),
		Status:         models.OrderStatusConfirmed,
		ExpirationTime: now.Add(s.ttl).Unix(),
		Timestamp:      now.Format(time.RFC3339Nano),
	}
}

// CreateOrder simule la charge, écrit la commande une seule fois puis notifie.
// Pas de retry : une erreur du store est renvoyée telle quelle.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CheckoutRequest) (*models.Order, error) {
	if len(req.Cart) == 0 {
		return nil, ErrInvalidCart
	}

	s.latency.Simulate(ctx)

	order := s.NewOrder(req)

	// Le délai simulé ne doit pas annuler l'écriture
	if err := s.store.Put(context.WithoutCancel(ctx), order); err != nil {
		return nil, fmt.Errorf("échec enregistrement commande: %w", err)
	}

	log.Printf("✅ Commande %s confirmée (%d items, total %s)",
		order.OrderID, len(order.Items), utils.FormatMoney(order.TotalAmount))

	s.notify(ctx, order)
	return order, nil
}

// notify : best effort, n'affecte jamais la réponse
func (s *OrderService) notify(ctx context.Context, order *models.Order) {
	if s.publisher != nil {
		if err := s.publisher.PublishOrder(context.WithoutCancel(ctx), order); err != nil {
			log.Printf("⚠️ Publication commande %s échouée: %v", order.OrderID, err)
		}
	}

	if s.mailer != nil && ShouldEmail(order.CustomerEmail) {
		go func(o models.Order) {
			if err := s.mailer.SendOrderConfirmation(&o); err != nil {
				log.Printf("⚠️ Email de confirmation non envoyé pour %s: %v", o.OrderID, err)
			}
		}(*order)
	}
}

// ShouldEmail : pas d'email pour le placeholder anonyme ni pour le domaine réservé example.com
func ShouldEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || email == models.AnonymousEmail {
		return false
	}
	return !strings.HasSuffix(email, "@example.com")
}
