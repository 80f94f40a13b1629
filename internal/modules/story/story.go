// Package story serves success-story testimonials.
package story

import (
	"errors"
	"strconv"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateStoryDTO struct {
	Name            string `json:"name"    binding:"required"`
	Title           string `json:"title"   binding:"required"`
	Slug            string `json:"slug"    binding:"required"`
	Content         string `json:"content" binding:"required"`
	ScholarshipName string `json:"scholarshipName"`
	ImageURL        string `json:"imageUrl"`
}

type UpdateStoryDTO struct {
	Name            *string `json:"name"`
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	ScholarshipName *string `json:"scholarshipName"`
	ImageURL        *string `json:"imageUrl"`
}

type Handler struct {
	db *store.Store
}

func NewHandler(db *store.Store) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/success-stories")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)

	a := g.Group("", authMW, adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.db.ListSuccessStories())
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, ok := h.db.GetSuccessStory(id)
	if !ok {
		response.NotFound(c, "Success story not found")
		return
	}
	response.OK(c, st)
}

func (h *Handler) getBySlug(c *gin.Context) {
	st, ok := h.db.GetSuccessStoryBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Success story not found")
		return
	}
	response.OK(c, st)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateStoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	st, err := h.db.CreateSuccessStory(models.SuccessStory{
		Name:            dto.Name,
		Title:           dto.Title,
		Slug:            dto.Slug,
		Content:         dto.Content,
		ScholarshipName: dto.ScholarshipName,
		ImageURL:        dto.ImageURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Success story slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, st)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateStoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	st, found, err := h.db.UpdateSuccessStory(id, func(st models.SuccessStory) models.SuccessStory {
		if dto.Name != nil {
			st.Name = *dto.Name
		}
		if dto.Title != nil {
			st.Title = *dto.Title
		}
		if dto.Slug != nil {
			st.Slug = *dto.Slug
		}
		if dto.Content != nil {
			st.Content = *dto.Content
		}
		if dto.ScholarshipName != nil {
			st.ScholarshipName = *dto.ScholarshipName
		}
		if dto.ImageURL != nil {
			st.ImageURL = *dto.ImageURL
		}
		return st
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Success story slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Success story not found")
		return
	}
	response.OK(c, st)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.db.DeleteSuccessStory(id) {
		response.NotFound(c, "Success story not found")
		return
	}
	response.NoContent(c)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}
