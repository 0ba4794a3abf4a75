package models

// CartItem vit uniquement côté client : un produit et sa quantité (>= 1)
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineItem est la forme envoyée au checkout et stockée dans la commande
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest est le body attendu par POST /orders
type CheckoutRequest struct {
	Cart          []LineItem `json:"cart"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
}
