package taxonomy

import (
	"errors"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateCountryDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type CountryHandler struct {
	db *store.Store
}

func NewCountryHandler(db *store.Store) *CountryHandler { return &CountryHandler{db: db} }

func (h *CountryHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/countries")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)

	g.POST("", authMW, adminMW, h.create)
}

func (h *CountryHandler) list(c *gin.Context) {
	response.OK(c, h.db.ListCountries())
}

func (h *CountryHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, ok := h.db.GetCountry(id)
	if !ok {
		response.NotFound(c, "Country not found")
		return
	}
	response.OK(c, country)
}

func (h *CountryHandler) getBySlug(c *gin.Context) {
	country, ok := h.db.GetCountryBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Country not found")
		return
	}
	response.OK(c, country)
}

func (h *CountryHandler) create(c *gin.Context) {
	var dto CreateCountryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	country, err := h.db.CreateCountry(models.Country{Name: dto.Name, Slug: dto.Slug})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Country slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, country)
}
