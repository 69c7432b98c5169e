package mockdata

import (
	"fmt"
	"strings"

	"commerce-admin/internal/domain"
)

var (
	firstNames = []string{
		"John", "Jane", "Michael", "Emily", "David",
		"Sarah", "Chris", "Amanda", "Robert", "Olivia",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones",
		"Miller", "Davis", "Garcia", "Rodriguez", "Wilson",
	}
	emailDomains = []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com",
	}
	streets = []string{
		"Main St", "Oak Ave", "Maple Ln", "Broadway",
		"Park Ave", "Cedar Rd", "Elm St", "Washington St",
	}
	cities   = []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego"}
	states   = []string{"NY", "CA", "IL", "TX", "AZ", "PA", "TX", "CA"}
	zipCodes = []string{"10001", "90001", "60601", "77001", "85001", "19101", "78201", "92101"}
)

func (g *Generator) personName() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) email(name string) string {
	local := strings.Join(strings.Split(strings.ToLower(name), " "), ".")
	return local + "@" + g.pick(emailDomains)
}

func (g *Generator) phone() string {
	return fmt.Sprintf("(%d) %d-%d", g.intn(100, 999), g.intn(100, 999), g.intn(1000, 9999))
}

// address picks city, state and zip from the same index so they agree.
func (g *Generator) address() domain.Address {
	i := g.rnd.Intn(len(cities))
	return domain.Address{
		Street:  fmt.Sprintf("%d %s", g.intn(100, 999), g.pick(streets)),
		City:    cities[i],
		State:   states[i],
		ZipCode: zipCodes[i],
		Country: "USA",
	}
}

// Customers generates n shoppers with cumulative purchase totals.
func (g *Generator) Customers(n int) []domain.Customer {
	customers := make([]domain.Customer, 0, n)

	statuses := []string{domain.CustomerStatusActive, domain.CustomerStatusInactive}

	for i := 1; i <= n; i++ {
		name := g.personName()
		customers = append(customers, domain.Customer{
			ID:           seqID("customer", i),
			Name:         name,
			Email:        g.email(name),
			Phone:        g.phone(),
			Address:      g.address(),
			CreatedAt:    g.pastDate(365),
			LastPurchase: g.pastDate(60),
			TotalSpent:   g.price(100, 5000),
			TotalOrders:  g.intn(1, 20),
			Status:       g.pick(statuses),
		})
	}

	return customers
}
