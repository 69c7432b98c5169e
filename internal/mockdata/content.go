package mockdata

import (
	"fmt"

	"commerce-admin/internal/domain"
)

// Content generates n CMS records. Published items get a publish date in the
// past, scheduled items a date in the future; every third item carries media.
func (g *Generator) Content(n int) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, n)

	for i := 1; i <= n; i++ {
		contentType := g.pick(domain.ContentTypes)
		status := g.pick(domain.ContentStatuses)

		item := domain.ContentItem{
			ID:        seqID("content", i),
			Title:     fmt.Sprintf("%s %d", labelPhrase(contentType), i),
			Type:      contentType,
			Status:    status,
			CreatedAt: g.pastDate(90),
			UpdatedAt: g.pastDate(15),
			Author:    g.personName(),
			Body:      fmt.Sprintf("This is sample content for %s...", contentType),
			SEO: domain.SEO{
				MetaTitle:       fmt.Sprintf("Meta Title for %s %d", contentType, i),
				MetaDescription: fmt.Sprintf("Meta description for %s %d with important keywords.", contentType, i),
				Keywords:        []string{"ecommerce", "products", "online shopping"},
			},
			Media: []string{},
		}

		if status == domain.ContentStatusPublished {
			published := g.pastDate(30)
			item.PublishedAt = &published
		}
		if status == domain.ContentStatusScheduled {
			scheduled := g.futureDate(30)
			item.ScheduledAt = &scheduled
		}
		if i%3 == 0 {
			item.Media = []string{fmt.Sprintf("https://picsum.photos/seed/content-%d/800/600", i)}
		}

		items = append(items, item)
	}

	return items
}
