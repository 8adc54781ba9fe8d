package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gipis/website/internal/config"
	"github.com/gipis/website/internal/database"
	"github.com/gipis/website/internal/models"
	"github.com/gipis/website/internal/services"
	"github.com/gipis/website/internal/store"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	cfg := config.Load()
	return SetupRouter(cfg, db), store.NewStore(db), cfg
}

func seedMemberWithPassword(t *testing.T, st *store.Store, cfg *config.Config, slug, email, password string) *models.Member {
	t.Helper()
	member := &models.Member{
		Slug:     slug,
		Name:     "Ana García",
		Email:    email,
		IsActive: true,
	}
	require.NoError(t, st.DB().Create(member).Error)

	authService := services.NewAuthService(cfg, st)
	require.NoError(t, authService.SetPassword(member, password))
	require.NoError(t, st.SaveMember(member))
	return member
}

func doJSON(router *gin.Engine, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("session cookie %q not set", name)
	return nil
}

func TestHealth(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHomeLimitsNews(t *testing.T) {
	router, st, _ := newTestRouter(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		published := base.AddDate(0, 0, i)
		item := models.News{
			Slug:        string(rune('a' + i)),
			Title:       "Novedad",
			PublishedAt: &published,
		}
		require.NoError(t, st.DB().Create(&item).Error)
	}

	w := doJSON(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		News []models.News `json:"news"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.News, 3)
	assert.Equal(t, "e", resp.News[0].Slug)
}

func TestMemberDetailNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/equipo/desconocido", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewsDetail(t *testing.T) {
	router, st, _ := newTestRouter(t)

	published := time.Now()
	item := models.News{Slug: "anuncio", Title: "Anuncio", PublishedAt: &published}
	require.NoError(t, st.DB().Create(&item).Error)

	w := doJSON(router, http.MethodGet, "/novedades/anuncio", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/novedades/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResearchLineDetailNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/investigacion/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric ids are a not-found outcome too, not a server error.
	w = doJSON(router, http.MethodGet, "/investigacion/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCooperationWithoutContent(t *testing.T) {
	router, _, _ := newTestRouter(t)

	// The migration never populates "cooperacion"; the page still renders.
	w := doJSON(router, http.MethodGet, "/cooperacion", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailuresShareOneResponse(t *testing.T) {
	router, st, cfg := newTestRouter(t)
	seedMemberWithPassword(t, st, cfg, "ana", "ana@example.com", "secreto")

	unknown := doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "nadie@example.com", "password": "secreto"})
	wrong := doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "ana@example.com", "password": "incorrecta"})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}

func TestSessionFlow(t *testing.T) {
	router, st, cfg := newTestRouter(t)
	member := seedMemberWithPassword(t, st, cfg, "ana", "ana@example.com", "secreto")

	// Dashboard requires a session.
	w := doJSON(router, http.MethodGet, "/auth/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login sets the cookie.
	w = doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "ana@example.com", "password": "secreto"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w, cfg.SessionCookieName)

	w = doJSON(router, http.MethodGet, "/auth/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Member models.MemberResponse `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, member.ID, resp.Member.ID)

	// Logout invalidates the session server-side.
	w = doJSON(router, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/auth/dashboard", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEditIsBoundToSession(t *testing.T) {
	router, st, cfg := newTestRouter(t)
	ana := seedMemberWithPassword(t, st, cfg, "ana", "ana@example.com", "secreto")
	bob := seedMemberWithPassword(t, st, cfg, "bob", "bob@example.com", "secreto")

	w := doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "ana@example.com", "password": "secreto"})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w, cfg.SessionCookieName)

	// A supplied id is ignored: the session decides whose record changes.
	w = doJSON(router, http.MethodPut, "/auth/profile",
		gin.H{"id": bob.ID, "name": "Intrusa"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	updatedAna, err := st.MemberByID(ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intrusa", updatedAna.Name)

	untouchedBob, err := st.MemberByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana García", untouchedBob.Name)
}

func TestProfileEditRequiresSession(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doJSON(router, http.MethodPut, "/auth/profile", gin.H{"name": "Nadie"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
