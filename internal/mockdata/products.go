package mockdata

import (
	"fmt"
	"strings"

	"commerce-admin/internal/domain"
)

var productNames = map[string][]string{
	"Electronics": {
		"Bluetooth Headphones", "Wireless Charger", "Smart Watch", "Laptop",
		"Tablet", "Smartphone", "Wireless Mouse", "Gaming Keyboard",
		"USB-C Hub", "Portable SSD",
	},
	"Clothing": {
		"T-Shirt", "Jeans", "Hoodie", "Dress", "Jacket", "Socks", "Hat",
		"Sneakers", "Sweatpants", "Scarf",
	},
	"Home & Kitchen": {
		"Coffee Maker", "Blender", "Toaster", "Microwave", "Air Fryer",
		"Food Processor", "Knife Set", "Cookware Set", "Vacuum Cleaner",
		"Bed Sheets",
	},
	"Beauty": {
		"Face Cream", "Shampoo", "Conditioner", "Lipstick", "Foundation",
		"Mascara", "Perfume", "Face Mask", "Hair Dryer", "Nail Polish",
	},
	"Books": {
		"Fiction Novel", "Cookbook", "Self-Help Book", "Biography",
		"Fantasy Book", "History Book", "Science Book", "Art Book",
		"Children's Book", "Reference Book",
	},
	"Sports": {
		"Yoga Mat", "Dumbbells", "Exercise Bike", "Running Shoes",
		"Basketball", "Tennis Racket", "Golf Clubs", "Swimming Goggles",
		"Fitness Tracker", "Resistance Bands",
	},
}

var productColors = []string{"Red", "Blue", "Green", "Black", "White"}

// Products generates n catalog products with a 20-50% markup over cost.
func (g *Generator) Products(n int) []domain.Product {
	products := make([]domain.Product, 0, n)

	for i := 1; i <= n; i++ {
		category := g.pick(domain.ProductCategories)
		name := g.pick(productNames[category])
		cost := g.price(10, 100)
		price := round2(cost * (1 + float64(g.intn(20, 50))/100))

		products = append(products, domain.Product{
			ID:          seqID("product", i),
			Name:        name,
			Category:    category,
			Description: fmt.Sprintf("High-quality %s with premium features.", strings.ToLower(name)),
			Price:       price,
			Cost:        cost,
			Stock:       g.intn(0, 100),
			SKU:         fmt.Sprintf("SKU-%05d", i),
			CreatedAt:   g.pastDate(365),
			UpdatedAt:   g.pastDate(30),
			Images:      []string{fmt.Sprintf("https://picsum.photos/seed/%d/400/400", i)},
			Specifications: map[string]string{
				"weight": fmt.Sprintf("%d lbs", g.intn(1, 10)),
				"dimensions": fmt.Sprintf("%dx%dx%d inches",
					g.intn(1, 20), g.intn(1, 20), g.intn(1, 20)),
				"color": g.pick(productColors),
			},
			Rating:     float64(g.intn(30, 50)) / 10, // 3.0 - 5.0
			SalesCount: g.intn(0, 1000),
		})
	}

	return products
}
