package domain

import "time"

// Content types.
var ContentTypes = []string{
	"product_page",
	"category_page",
	"blog_post",
	"banner",
	"promotion",
}

// Content statuses.
const (
	ContentStatusDraft     = "draft"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// ContentStatuses lists every content status in display order.
var ContentStatuses = []string{
	ContentStatusDraft,
	ContentStatusScheduled,
	ContentStatusPublished,
	ContentStatusArchived,
}

// SEO metadata attached to a content item.
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// ContentItem is a CMS record. PublishedAt is set only for published items,
// ScheduledAt only for scheduled ones.
type ContentItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	PublishedAt *time.Time `json:"publishedAt"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Author      string     `json:"author"`
	Body        string     `json:"content"`
	SEO         SEO        `json:"seo"`
	Media       []string   `json:"media"`
}
