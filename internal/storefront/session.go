package storefront

import (
	"context"
	"log"

	"flash_sale_back_end/internal/models"
)

// Messages affichés à l'utilisateur
const (
	ErrLoadProducts = "Failed to load products. Please try again."
	ErrEmptyCart    = "Your cart is empty"
	ErrCheckout     = "Failed to process order. Please try again."

	DefaultCustomerEmail = "flash-sale-customer@example.com"
)

// API est la partie serveur dont la session a besoin
type API interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	PlaceOrder(ctx context.Context, checkout models.CheckoutRequest) (models.OrderSummary, error)
}

// Session est l'état de la vue principale : catalogue, panier et résultat du checkout.
// Le panier n'est modifié qu'à travers ses méthodes.
type Session struct {
	api           API
	customerEmail string

	Products   []models.Product
	Cart       Cart
	Loading    bool
	Processing bool
	OrderID    string
	Error      string
}

func NewSession(api API, customerEmail string) *Session {
	if customerEmail == "" {
		customerEmail = DefaultCustomerEmail
	}
	return &Session{api: api, customerEmail: customerEmail}
}

func (s *Session) LoadProducts(ctx context.Context) error {
	s.Loading = true
	s.Error = ""
	defer func() { s.Loading = false }()

	products, err := s.api.FetchProducts(ctx)
	if err != nil {
		log.Printf("❌ Chargement du catalogue: %v", err)
		s.Products = nil
		s.Error = ErrLoadProducts
		return err
	}
	s.Products = products
	return nil
}

func (s *Session) findProduct(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddToCart ajoute un produit du catalogue chargé ; false si l'id est inconnu
func (s *Session) AddToCart(id string) bool {
	p, ok := s.findProduct(id)
	if !ok {
		return false
	}
	s.Cart.Add(p)
	return true
}

func (s *Session) RemoveFromCart(id string) {
	s.Cart.Remove(id)
}

func (s *Session) UpdateQuantity(id string, q int) {
	s.Cart.SetQuantity(id, q)
}

// Checkout envoie le panier. En cas d'échec le panier est conservé pour réessayer.
func (s *Session) Checkout(ctx context.Context) (string, bool) {
	if s.Cart.IsEmpty() {
		s.Error = ErrEmptyCart
		return "", false
	}

	s.Processing = true
	s.Error = ""
	defer func() { s.Processing = false }()

	summary, err := s.api.PlaceOrder(ctx, models.CheckoutRequest{
		Cart:          s.Cart.LineItems(),
		CustomerEmail: s.customerEmail,
	})
	if err != nil {
		log.Printf("❌ Checkout: %v", err)
		s.Error = ErrCheckout
		return "", false
	}

	s.OrderID = summary.OrderID
	s.Cart.Clear()
	return summary.OrderID, true
}

func (s *Session) ClearError() {
	s.Error = ""
}

// CloseOrder ferme la confirmation de commande
func (s *Session) CloseOrder() {
	s.OrderID = ""
}
