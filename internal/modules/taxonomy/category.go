package taxonomy

import (
	"errors"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

type CategoryService struct {
	db *store.Store
}

func NewCategoryService(db *store.Store) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(dto *CreateCategoryDTO) (models.Category, error) {
	return s.db.CreateCategory(models.Category{
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
	})
}

// Update applies the set fields only; omitted fields keep their value.
func (s *CategoryService) Update(id int, dto *UpdateCategoryDTO) (models.Category, bool, error) {
	return s.db.UpdateCategory(id, func(cat models.Category) models.Category {
		if dto.Name != nil {
			cat.Name = *dto.Name
		}
		if dto.Slug != nil {
			cat.Slug = *dto.Slug
		}
		if dto.Description != nil {
			cat.Description = *dto.Description
		}
		return cat
	})
}

type CategoryHandler struct {
	svc *CategoryService
}

func NewCategoryHandler(svc *CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/categories")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)

	a := g.Group("", authMW, adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

func (h *CategoryHandler) list(c *gin.Context) {
	response.OK(c, h.svc.db.ListCategories())
}

func (h *CategoryHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, ok := h.svc.db.GetCategory(id)
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}
	response.OK(c, cat)
}

func (h *CategoryHandler) getBySlug(c *gin.Context) {
	cat, ok := h.svc.db.GetCategoryBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Category not found")
		return
	}
	response.OK(c, cat)
}

func (h *CategoryHandler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Category slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *CategoryHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, found, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Category slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Category not found")
		return
	}
	response.OK(c, cat)
}

func (h *CategoryHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.svc.db.DeleteCategory(id) {
		response.NotFound(c, "Category not found")
		return
	}
	response.NoContent(c)
}
