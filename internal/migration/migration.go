// Package migration implements the one-time transform of the legacy JSON
// document into the relational schema. It drops and recreates the schema on
// every run; rerunning is safe only because it always starts from empty.
package migration

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/models"
	"gorm.io/gorm"
)

// Document is the legacy data set: a nested structure keyed by slug within
// each section.
type Document struct {
	Group    *GroupData    `json:"group"`
	Research *ResearchData `json:"research"`
	Home     *HomeData     `json:"home"`
}

type GroupData struct {
	Categories []CategoryEntry        `json:"categories"`
	Members    map[string]MemberEntry `json:"members"`
}

type CategoryEntry struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

type MemberEntry struct {
	Name     string       `json:"name"`
	Degree   string       `json:"degree"`
	Position string       `json:"position"`
	Desc     string       `json:"desc"`
	Pic      string       `json:"pic"`
	Contact  ContactEntry `json:"contact"`
}

type ContactEntry struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
}

type ResearchData struct {
	Sections []SectionEntry       `json:"sections"`
	Items    map[string]ItemEntry `json:"items"`
}

type SectionEntry struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

type ItemEntry struct {
	Title   string          `json:"title"`
	Authors string          `json:"authors"`
	Year    string          `json:"year"`
	Desc    string          `json:"desc"`
	Links   models.LinkList `json:"links"`
}

type HomeData struct {
	Sections []HomeSectionEntry `json:"sections"`
}

type HomeSectionEntry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Counts reports the rows created per entity type, for operator verification.
type Counts struct {
	Categories   int
	Members      int
	Sections     int
	Items        int
	SiteContents int
}

// LoadDocument reads and decodes the migration input. Structural problems
// surface here, before anything touches the schema.
func LoadDocument(filePath string) (*Document, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks the required top-level keys.
func (d *Document) Validate() error {
	if d.Group == nil {
		return errors.New("document missing top-level key: group")
	}
	if d.Research == nil {
		return errors.New("document missing top-level key: research")
	}
	if d.Home == nil {
		return errors.New("document missing top-level key: home")
	}
	return nil
}

// Run drops the schema, recreates it, and populates it from the document.
// The three passes run without a wrapping transaction; a mid-run failure
// leaves the schema partially populated and the run must be repeated.
func Run(db *gorm.DB, doc *Document) (Counts, error) {
	var counts Counts

	if err := doc.Validate(); err != nil {
		return counts, err
	}

	if err := database.DropAll(db); err != nil {
		return counts, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return counts, err
	}

	if err := migrateGroup(db, doc.Group, &counts); err != nil {
		return counts, err
	}
	if err := migrateResearch(db, doc.Research, &counts); err != nil {
		return counts, err
	}
	if err := migrateSiteContent(db, doc.Home, &counts); err != nil {
		return counts, err
	}

	return counts, nil
}

// migrateGroup creates categories in document order and their members in
// per-category order. A category without a name, or a member slug missing
// from the directory, is skipped with a note; neither is an error.
func migrateGroup(db *gorm.DB, group *GroupData, counts *Counts) error {
	log.Println("Migrando miembros del grupo...")

	for idx, entry := range group.Categories {
		if entry.Name == "" {
			log.Printf("  ~ categoría sin nombre en posición %d, omitida", idx)
			continue
		}

		category := models.Category{
			Name:  entry.Name,
			Order: idx,
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		counts.Categories++

		for memberOrder, slug := range entry.Members {
			info, ok := group.Members[slug]
			if !ok {
				log.Printf("  ~ miembro %q no encontrado en el directorio, omitido", slug)
				continue
			}

			name := info.Name
			if name == "" {
				name = "Sin nombre"
			}

			member := models.Member{
				Slug:       slug,
				Name:       name,
				Degree:     info.Degree,
				Position:   info.Position,
				Bio:        info.Desc,
				Email:      info.Contact.Email,
				LinkedIn:   info.Contact.LinkedIn,
				Photo:      photoFile(info.Pic),
				Order:      memberOrder,
				IsActive:   true,
				CategoryID: category.ID,
			}
			if err := db.Create(&member).Error; err != nil {
				return err
			}
			counts.Members++
			log.Printf("  + %s", member.Name)
		}
	}

	return nil
}

// migrateResearch creates sections in document order, falling back to a
// synthetic slug when the source lacks one, and resolves each section's item
// slugs against the item directory.
func migrateResearch(db *gorm.DB, research *ResearchData, counts *Counts) error {
	log.Println("Migrando secciones de investigación...")

	for idx, entry := range research.Sections {
		if entry.Title == "" {
			log.Printf("  ~ sección sin título en posición %d, omitida", idx)
			continue
		}

		slug := entry.ID
		if slug == "" {
			slug = fmt.Sprintf("section_%d", idx)
		}

		section := models.ResearchSection{
			Slug:  slug,
			Title: entry.Title,
			Order: idx,
		}
		if err := db.Create(&section).Error; err != nil {
			return err
		}
		counts.Sections++
		log.Printf("  Sección: %s", section.Title)

		for _, itemSlug := range entry.Content {
			info, ok := research.Items[itemSlug]
			if !ok {
				log.Printf("  ~ item %q no encontrado en el directorio, omitido", itemSlug)
				continue
			}

			title := info.Title
			if title == "" {
				title = "Sin título"
			}

			item := models.ResearchItem{
				Slug:      itemSlug,
				Title:     title,
				Authors:   info.Authors,
				Year:      info.Year,
				Abstract:  info.Desc,
				Links:     info.Links,
				SectionID: section.ID,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
			counts.Items++
		}
	}

	return nil
}

// migrateSiteContent stores the home section titled "Misión" under the fixed
// key "mission". Every other home section is dropped; the source mapping for
// them is unresolved upstream, so the skip is noted rather than filled.
func migrateSiteContent(db *gorm.DB, home *HomeData, counts *Counts) error {
	log.Println("Migrando contenido del sitio...")

	for _, entry := range home.Sections {
		if entry.Title != "Misión" {
			log.Printf("  ~ sección de inicio %q no migrada", entry.Title)
			continue
		}

		content := models.SiteContent{
			Key:     "mission",
			Title:   "Misión",
			Content: entry.Content,
		}
		if err := db.Create(&content).Error; err != nil {
			return err
		}
		counts.SiteContents++
		log.Println("  + Misión")
	}

	return nil
}

// photoFile keeps only the filename component of the legacy pic path.
func photoFile(pic string) string {
	if pic == "" {
		return ""
	}
	return path.Base(pic)
}
