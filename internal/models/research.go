package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ResearchSection groups research items (Publicaciones, Proyectos, Tesis, ...).
type ResearchSection struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Slug  string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Title string `gorm:"size:150;not null" json:"title"`
	Order int    `gorm:"default:0" json:"order"`

	// Relations
	Items []ResearchItem `gorm:"foreignKey:SectionID" json:"items,omitempty"`
}

func (ResearchSection) TableName() string {
	return "research_sections"
}

// Link is one external reference attached to a research item.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// LinkList is the serialization contract for the research_items.links column:
// encoded as a JSON array on write, decoded on read. An empty list is stored
// as SQL NULL, so "no links" and "empty list" collapse to the same value.
type LinkList []Link

func (l LinkList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LinkList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("links: cannot scan %T", value)
	}
	return json.Unmarshal(raw, l)
}

// ResearchItem is a publication, project, thesis or similar entry.
type ResearchItem struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Slug     string   `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Title    string   `gorm:"size:500;not null" json:"title"`
	Authors  string   `gorm:"size:500" json:"authors"`
	Year     string   `gorm:"size:10" json:"year"`
	Abstract string   `gorm:"type:text" json:"abstract"`
	Links    LinkList `gorm:"type:text" json:"links,omitempty"`

	SectionID uint `gorm:"index" json:"section_id"`
}

func (ResearchItem) TableName() string {
	return "research_items"
}

// ResearchLine is a standing line of research. Lines are not linked to
// sections; the detail page lists every section alongside the line.
type ResearchLine struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:50" json:"icon"`
	Order       int    `gorm:"default:0" json:"order"`
}

func (ResearchLine) TableName() string {
	return "research_lines"
}
