package models

import "time"

// News is a published announcement. Listings order by PublishedAt descending.
type News struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Slug        string     `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"size:300;not null" json:"title"`
	Excerpt     string     `gorm:"size:500" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Image       string     `gorm:"size:255" json:"image"`
	Category    string     `gorm:"size:100" json:"category"`
	PublishedAt *time.Time `json:"published_at"`
}

func (News) TableName() string {
	return "news"
}

// SiteContent is a static content block looked up by key ("mission",
// "cooperacion", ...).
type SiteContent struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Key     string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Title   string `gorm:"size:200" json:"title"`
	Content string `gorm:"type:text" json:"content"`
}

func (SiteContent) TableName() string {
	return "site_content"
}
