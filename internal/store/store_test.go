package store

import (
	"testing"
	"time"

	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))
	return NewStore(db)
}

func newsAt(slug string, published time.Time) models.News {
	return models.News{
		Slug:        slug,
		Title:       "Novedad " + slug,
		PublishedAt: &published,
	}
}

func TestNewsOrderingAndLimit(t *testing.T) {
	st := newTestStore(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Inserted out of order on purpose.
	for _, offset := range []int{2, 0, 4, 1, 3} {
		item := newsAt(
			[]string{"a", "b", "c", "d", "e"}[offset],
			base.AddDate(0, 0, offset),
		)
		require.NoError(t, st.DB().Create(&item).Error)
	}

	all, err := st.AllNews()
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, !all[i].PublishedAt.After(*all[i-1].PublishedAt),
			"news not in descending publish order at index %d", i)
	}

	latest, err := st.LatestNews(3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "e", latest[0].Slug)
	assert.Equal(t, "d", latest[1].Slug)
	assert.Equal(t, "c", latest[2].Slug)
}

func TestNewsBySlug(t *testing.T) {
	st := newTestStore(t)

	item := newsAt("anuncio", time.Now())
	require.NoError(t, st.DB().Create(&item).Error)

	found, err := st.NewsBySlug("anuncio")
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	_, err = st.NewsBySlug("no-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemberBySlugNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.MemberBySlug("nadie")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteContentByKey(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.DB().Create(&models.SiteContent{
		Key:     "mission",
		Title:   "Misión",
		Content: "Investigar.",
	}).Error)

	content, err := st.SiteContentByKey("mission")
	require.NoError(t, err)
	assert.Equal(t, "Misión", content.Title)

	_, err = st.SiteContentByKey("cooperacion")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoriesWithMembersOrdering(t *testing.T) {
	st := newTestStore(t)

	second := models.Category{Name: "Becarios", Order: 1}
	first := models.Category{Name: "Investigadores", Order: 0}
	require.NoError(t, st.DB().Create(&second).Error)
	require.NoError(t, st.DB().Create(&first).Error)

	members := []models.Member{
		{Slug: "bob", Name: "Bob", Email: "bob@example.com", Order: 1, CategoryID: first.ID},
		{Slug: "ana", Name: "Ana", Email: "ana@example.com", Order: 0, CategoryID: first.ID},
	}
	for i := range members {
		require.NoError(t, st.DB().Create(&members[i]).Error)
	}

	categories, err := st.CategoriesWithMembers()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "Investigadores", categories[0].Name)
	assert.Equal(t, "Becarios", categories[1].Name)

	require.Len(t, categories[0].Members, 2)
	assert.Equal(t, "ana", categories[0].Members[0].Slug)
	assert.Equal(t, "bob", categories[0].Members[1].Slug)
}

func TestResearchLineByID(t *testing.T) {
	st := newTestStore(t)

	line := models.ResearchLine{Title: "Sistemas Distribuidos", Order: 0}
	require.NoError(t, st.DB().Create(&line).Error)

	found, err := st.ResearchLineByID(line.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sistemas Distribuidos", found.Title)

	_, err = st.ResearchLineByID(line.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	st := newTestStore(t)

	session := &models.Session{Token: "abc123", MemberID: 7}
	require.NoError(t, st.CreateSession(session))

	found, err := st.SessionByToken("abc123")
	require.NoError(t, err)
	assert.EqualValues(t, 7, found.MemberID)

	require.NoError(t, st.DeleteSession("abc123"))
	_, err = st.SessionByToken("abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}
