// Package tag serves the flat tag vocabulary for articles.
package tag

import (
	"errors"
	"strconv"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateTagDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type Handler struct {
	db *store.Store
}

func NewHandler(db *store.Store) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/tags")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)
	g.GET("/:id/posts", h.listPosts)

	g.POST("", authMW, adminMW, h.create)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.db.ListTags())
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, ok := h.db.GetTag(id)
	if !ok {
		response.NotFound(c, "Tag not found")
		return
	}
	response.OK(c, t)
}

func (h *Handler) getBySlug(c *gin.Context) {
	t, ok := h.db.GetTagBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Tag not found")
		return
	}
	response.OK(c, t)
}

// listPosts returns the articles carrying a tag, without bumping their
// view counters.
func (h *Handler) listPosts(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, exists := h.db.GetTag(id); !exists {
		response.NotFound(c, "Tag not found")
		return
	}
	response.OK(c, h.db.GetTagPosts(id))
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.db.CreateTag(models.Tag{Name: dto.Name, Slug: dto.Slug})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Tag slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, t)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
