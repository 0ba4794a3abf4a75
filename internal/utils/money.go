package utils

import (
	"flash_sale_back_end/internal/models"

	"github.com/shopspring/decimal"
)

// CartTotal calcule Σ prix × quantité arrondi à 2 décimales
func CartTotal(items []models.LineItem) float64 {
	return RoundMoney(cartTotal(items))
}

func cartTotal(items []models.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// RoundMoney arrondit un montant à 2 décimales
func RoundMoney(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// LineTotal retourne prix × quantité arrondi
func LineTotal(item models.LineItem) float64 {
	return RoundMoney(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
}

// FormatMoney formate un montant avec 2 décimales fixes ("25.00")
func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// PercentOf retourne rate% de amount, arrondi (utilisé pour la taxe affichée côté client)
func PercentOf(amount float64, rate int64) float64 {
	return RoundMoney(decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(rate)).Div(decimal.NewFromInt(100)))
}
