package models

// Product est un article du catalogue flash sale (défini au déploiement, jamais modifié)
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"`
	Image         string  `json:"image"`
	Discount      int     `json:"discount"`
}
