package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gipis/website/internal/store"
)

// homeNewsLimit caps the news teaser on the home page.
const homeNewsLimit = 3

type PageHandler struct {
	store *store.Store
}

func NewPageHandler(st *store.Store) *PageHandler {
	return &PageHandler{store: st}
}

// Home returns the mission block and the latest news.
func (h *PageHandler) Home(c *gin.Context) {
	mission, err := h.store.SiteContentByKey("mission")
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	news, err := h.store.LatestNews(homeNewsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mission": mission,
		"news":    news,
	})
}

// Team returns categories in display order with their members.
func (h *PageHandler) Team(c *gin.Context) {
	categories, err := h.store.CategoriesWithMembers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// MemberDetail returns one member by slug, or not-found.
func (h *PageHandler) MemberDetail(c *gin.Context) {
	member, err := h.store.MemberBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Miembro no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"member": member.ToResponse()})
}

// Research returns research lines and sections, both in display order.
func (h *PageHandler) Research(c *gin.Context) {
	lines, err := h.store.ResearchLines()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load research"})
		return
	}

	sections, err := h.store.ResearchSectionsWithItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load research"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lines":    lines,
		"sections": sections,
	})
}

// ResearchLineDetail returns one research line by numeric id, or not-found.
// Lines have no section link, so every section is listed alongside.
func (h *PageHandler) ResearchLineDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Línea no encontrada"})
		return
	}

	line, err := h.store.ResearchLineByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Línea no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load research line"})
		return
	}

	sections, err := h.store.ResearchSectionsWithItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load research line"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"line":     line,
		"sections": sections,
	})
}

// Cooperation returns the cooperation content block. The block may be absent
// (it is not populated by the migration); the page still renders.
func (h *PageHandler) Cooperation(c *gin.Context) {
	content, err := h.store.SiteContentByKey("cooperacion")
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": content})
}

// NewsList returns all news, newest first. No pagination (known gap).
func (h *PageHandler) NewsList(c *gin.Context) {
	news, err := h.store.AllNews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": news})
}

// NewsDetail returns one news entry by slug, or not-found.
func (h *PageHandler) NewsDetail(c *gin.Context) {
	item, err := h.store.NewsBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Novedad no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": item})
}

// Contact returns the static contact page payload.
func (h *PageHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"page": "contacto"})
}
