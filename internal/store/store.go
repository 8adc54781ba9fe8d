package store

import (
	"errors"

	"github.com/gipis/website/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a slug or id does not resolve. Handlers map it
// to the user-visible not-found page, distinct from any other failure.
var ErrNotFound = errors.New("record not found")

// Store holds the database handle and owns every query and save of the
// application. Entities stay plain; nothing else touches gorm directly.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Team ---

// CategoriesWithMembers returns categories in display order, each with its
// members in member order.
func (s *Store) CategoriesWithMembers() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order"`)
		}).
		Order(`"order"`).
		Find(&categories).Error
	return categories, err
}

func (s *Store) MemberBySlug(slug string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("slug = ?", slug).First(&member).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (s *Store) MemberByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (s *Store) MemberByEmail(email string) (*models.Member, error) {
	var member models.Member
	if err := s.db.Where("email = ?", email).First(&member).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}

func (s *Store) AllMembers() ([]models.Member, error) {
	var members []models.Member
	err := s.db.Order(`"order"`).Find(&members).Error
	return members, err
}

func (s *Store) SaveMember(member *models.Member) error {
	return s.db.Save(member).Error
}

// --- Research ---

func (s *Store) ResearchLines() ([]models.ResearchLine, error) {
	var lines []models.ResearchLine
	err := s.db.Order(`"order"`).Find(&lines).Error
	return lines, err
}

func (s *Store) ResearchLineByID(id uint) (*models.ResearchLine, error) {
	var line models.ResearchLine
	if err := s.db.First(&line, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

// ResearchSectionsWithItems returns sections in display order with their
// items. Item link lists are decoded by the LinkList scanner on read.
func (s *Store) ResearchSectionsWithItems() ([]models.ResearchSection, error) {
	var sections []models.ResearchSection
	err := s.db.
		Preload("Items").
		Order(`"order"`).
		Find(&sections).Error
	return sections, err
}

// --- News ---

// LatestNews returns up to limit news entries, newest first.
func (s *Store) LatestNews(limit int) ([]models.News, error) {
	var news []models.News
	err := s.db.Order("published_at DESC").Limit(limit).Find(&news).Error
	return news, err
}

// AllNews returns every news entry, newest first. No pagination; the full
// listing endpoint serves everything (known gap carried from the original).
func (s *Store) AllNews() ([]models.News, error) {
	var news []models.News
	err := s.db.Order("published_at DESC").Find(&news).Error
	return news, err
}

func (s *Store) NewsBySlug(slug string) (*models.News, error) {
	var item models.News
	if err := s.db.Where("slug = ?", slug).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// --- Site content ---

func (s *Store) SiteContentByKey(key string) (*models.SiteContent, error) {
	var content models.SiteContent
	if err := s.db.Where("key = ?", key).First(&content).Error; err != nil {
		return nil, notFound(err)
	}
	return &content, nil
}

// --- Sessions ---

func (s *Store) CreateSession(session *models.Session) error {
	return s.db.Create(session).Error
}

func (s *Store) SessionByToken(token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

func (s *Store) DeleteSession(token string) error {
	return s.db.Where("token = ?", token).Delete(&models.Session{}).Error
}
