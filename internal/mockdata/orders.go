package mockdata

import "commerce-admin/internal/domain"

// Orders generates n orders referencing the given customers and products.
// Subtotal, tax, shipping and total are computed so the stored totals obey
// total = subtotal + tax + shipping at generation time.
func (g *Generator) Orders(n int, customers []domain.Customer, products []domain.Product) []domain.Order {
	if len(customers) == 0 || len(products) == 0 {
		return []domain.Order{}
	}

	orders := make([]domain.Order, 0, n)

	for i := 1; i <= n; i++ {
		customer := customers[g.rnd.Intn(len(customers))]
		status := g.pick(domain.OrderStatuses)
		orderDate := g.pastDate(90)

		itemCount := g.intn(1, 5)
		items := make([]domain.OrderItem, 0, itemCount)
		subtotal := 0.0

		for j := 0; j < itemCount; j++ {
			product := products[g.rnd.Intn(len(products))]
			quantity := g.intn(1, 3)
			total := round2(product.Price * float64(quantity))

			items = append(items, domain.OrderItem{
				Product: domain.ProductSummary{
					ID:    product.ID,
					Name:  product.Name,
					Price: product.Price,
					SKU:   product.SKU,
				},
				Quantity: quantity,
				Price:    product.Price,
				Total:    total,
			})

			subtotal += total
		}

		subtotal = round2(subtotal)
		tax := round2(subtotal * TaxRate)
		shipping := g.price(5, 15)
		total := round2(subtotal + tax + shipping)

		order := domain.Order{
			ID: seqID("order", i),
			Customer: domain.CustomerSummary{
				ID:    customer.ID,
				Name:  customer.Name,
				Email: customer.Email,
			},
			Status:          status,
			Items:           items,
			Subtotal:        subtotal,
			Tax:             tax,
			Shipping:        shipping,
			Total:           total,
			PaymentMethod:   g.pick(domain.PaymentMethods),
			ShippingAddress: customer.Address,
			CreatedAt:       orderDate,
			UpdatedAt:       orderDate,
		}

		if status == domain.OrderStatusShipped || status == domain.OrderStatusDelivered {
			shipped := g.pastDate(30)
			order.ShippedAt = &shipped
		}
		if status == domain.OrderStatusDelivered {
			delivered := g.pastDate(15)
			order.DeliveredAt = &delivered
		}

		orders = append(orders, order)
	}

	return orders
}
