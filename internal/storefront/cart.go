// Package storefront porte l'état côté client : panier, session et client HTTP de l'API.
package storefront

import (
	"flash_sale_back_end/internal/models"
	"flash_sale_back_end/internal/utils"

	"github.com/shopspring/decimal"
)

// TaxRatePercent est la taxe affichée dans le récapitulatif (jamais facturée par le serveur)
const TaxRatePercent = 8

// Cart est un panier en mémoire ; les lignes gardent leur ordre d'ajout.
// Pas de verrou : il appartient à une seule session pilotée par l'UI.
type Cart struct {
	items []models.CartItem
}

func (c *Cart) indexOf(id string) int {
	for i, item := range c.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Add ajoute un produit ; s'il est déjà présent on incrémente la quantité
func (c *Cart) Add(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
		return
	}
	c.items = append(c.items, models.CartItem{Product: p, Quantity: 1})
}

func (c *Cart) Remove(id string) {
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// SetQuantity fixe la quantité ; q <= 0 retire la ligne. Sans effet si l'id est absent.
func (c *Cart) SetQuantity(id string, q int) {
	if q <= 0 {
		c.Remove(id)
		return
	}
	if i := c.indexOf(id); i >= 0 {
		c.items[i].Quantity = q
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items retourne une copie des lignes
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len est le nombre de lignes distinctes
func (c *Cart) Len() int {
	return len(c.items)
}

// Count est le nombre total d'articles (somme des quantités)
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// LineItems construit le payload de checkout
func (c *Cart) LineItems() []models.LineItem {
	out := make([]models.LineItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, models.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return out
}

func (c *Cart) Subtotal() float64 {
	return utils.CartTotal(c.LineItems())
}

type Summary struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Summary calcule le récapitulatif affiché (sous-total, taxe 8 %, total)
func (c *Cart) Summary() Summary {
	subtotal := c.Subtotal()
	tax := utils.PercentOf(subtotal, TaxRatePercent)
	total := decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(tax))
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    utils.RoundMoney(total),
	}
}
