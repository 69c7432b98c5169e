// Package mockdata generates the synthetic collections the dashboard runs
// on. One canonical generator exists per entity type; all of them are pure
// functions over an injected random source so seeding is reproducible.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"commerce-admin/internal/domain"
)

// Collection sizes, matching the original dataset.
const (
	ProductCount     = 50
	CustomerCount    = 50
	OrderCount       = 100
	CampaignCount    = 20
	ContentCount     = 30
	TaxRate          = 0.08
	ConversionValue  = 45 // assumed dollar value per campaign conversion
	DefaultGenerator = 1  // seed used when none is configured
)

// Dataset bundles one generated instance of every collection.
type Dataset struct {
	Products     []domain.Product
	Customers    []domain.Customer
	Orders       []domain.Order
	Transactions []domain.Transaction
	Campaigns    []domain.Campaign
	Content      []domain.ContentItem
}

// Generator produces synthetic records relative to a fixed "now".
type Generator struct {
	rnd *rand.Rand
	now time.Time
}

// New creates a Generator seeded for reproducibility.
func New(seed int64, now time.Time) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), now: now}
}

// GenerateAll builds every collection. Orders reference the generated
// customers and products by id, so the whole dataset is produced together.
func (g *Generator) GenerateAll() Dataset {
	products := g.Products(ProductCount)
	customers := g.Customers(CustomerCount)

	return Dataset{
		Products:     products,
		Customers:    customers,
		Orders:       g.Orders(OrderCount, customers, products),
		Transactions: g.Transactions(),
		Campaigns:    g.Campaigns(CampaignCount),
		Content:      g.Content(ContentCount),
	}
}

// intn returns a random int in [min, max] inclusive.
func (g *Generator) intn(min, max int) int {
	return g.rnd.Intn(max-min+1) + min
}

// price returns a random amount in [min, max) rounded to cents.
func (g *Generator) price(min, max float64) float64 {
	return round2(g.rnd.Float64()*(max-min) + min)
}

// pastDate returns a random day within the last n days.
func (g *Generator) pastDate(days int) time.Time {
	return g.now.AddDate(0, 0, -g.intn(0, days))
}

// futureDate returns a random day within the next n days.
func (g *Generator) futureDate(days int) time.Time {
	return g.now.AddDate(0, 0, g.intn(1, days))
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func seqID(prefix string, n int) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}
