// Package catalog contient le catalogue flash sale, unique source de vérité côté serveur.
package catalog

import "flash_sale_back_end/internal/models"

var products = []models.Product{
	{
		ID:            "rtx-4090",
		Name:          "RTX 4090 GPU",
		Price:         1599.99,
		OriginalPrice: 1999.99,
		Description:   "Flagship graphics card for ultimate gaming and AI workloads",
		Stock:         12,
		Image:         "https://images.unsplash.com/photo-1587829191301-f7c7af6c77f8?w=400&h=300&fit=crop",
		Discount:      20,
	},
	{
		ID:            "macbook-pro-m3",
		Name:          "MacBook Pro M3",
		Price:         1999.00,
		OriginalPrice: 2499.00,
		Description:   "Powerful laptop with M3 chip for professionals",
		Stock:         8,
		Image:         "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400&h=300&fit=crop",
		Discount:      20,
	},
	{
		ID:            "ps5-console",
		Name:          "PlayStation 5",
		Price:         499.99,
		OriginalPrice: 649.99,
		Description:   "Next-gen gaming console with stunning graphics",
		Stock:         15,
		Image:         "https://images.unsplash.com/photo-1605901287835-b5f7a80a2d3f?w=400&h=300&fit=crop",
		Discount:      23,
	},
	{
		ID:            "iphone-15-pro",
		Name:          "iPhone 15 Pro Max",
		Price:         1099.00,
		OriginalPrice: 1399.00,
		Description:   "Latest iPhone with A17 Pro and superior camera system",
		Stock:         20,
		Image:         "https://images.unsplash.com/photo-1592286927505-1fed6a0ce0e5?w=400&h=300&fit=crop",
		Discount:      21,
	},
	{
		ID:            "airpods-pro",
		Name:          "AirPods Pro (3rd Gen)",
		Price:         249.00,
		OriginalPrice: 349.00,
		Description:   "Premium wireless earbuds with active noise cancellation",
		Stock:         50,
		Image:         "https://images.unsplash.com/photo-1606841838e12-8facc6dcde92?w=400&h=300&fit=crop",
		Discount:      29,
	},
	{
		ID:            "samsung-qled",
		Name:          `85" Samsung QLED TV`,
		Price:         1799.99,
		OriginalPrice: 2299.99,
		Description:   "4K QLED television with 144Hz refresh rate",
		Stock:         6,
		Image:         "https://images.unsplash.com/photo-1593642532400-2682a8a8fca9?w=400&h=300&fit=crop",
		Discount:      22,
	},
}

// Products retourne une copie du catalogue (les appelants ne peuvent pas le modifier)
func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}
