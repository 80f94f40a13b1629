// Package scholarship serves the scholarship catalog, the core listing
// surface of the site.
package scholarship

import (
	"errors"
	"strconv"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateScholarshipDTO struct {
	Title           string `json:"title"       binding:"required"`
	Slug            string `json:"slug"        binding:"required"`
	Description     string `json:"description" binding:"required"`
	Deadline        string `json:"deadline"`
	Amount          string `json:"amount"`
	IsFeatured      bool   `json:"isFeatured"`
	IsFullyFunded   bool   `json:"isFullyFunded"`
	CountryID       *int   `json:"countryId"`
	LevelID         *int   `json:"levelId"`
	CategoryID      *int   `json:"categoryId"`
	Requirements    string `json:"requirements"`
	ApplicationLink string `json:"applicationLink"`
	ImageURL        string `json:"imageUrl"`
}

type UpdateScholarshipDTO struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	Deadline        *string `json:"deadline"`
	Amount          *string `json:"amount"`
	IsFeatured      *bool   `json:"isFeatured"`
	IsFullyFunded   *bool   `json:"isFullyFunded"`
	CountryID       *int    `json:"countryId"`
	LevelID         *int    `json:"levelId"`
	CategoryID      *int    `json:"categoryId"`
	Requirements    *string `json:"requirements"`
	ApplicationLink *string `json:"applicationLink"`
	ImageURL        *string `json:"imageUrl"`
}

type Service struct {
	db *store.Store
}

func NewService(db *store.Store) *Service { return &Service{db: db} }

func (s *Service) Create(dto *CreateScholarshipDTO) (models.Scholarship, error) {
	return s.db.CreateScholarship(models.Scholarship{
		Title:           dto.Title,
		Slug:            dto.Slug,
		Description:     dto.Description,
		Deadline:        dto.Deadline,
		Amount:          dto.Amount,
		IsFeatured:      dto.IsFeatured,
		IsFullyFunded:   dto.IsFullyFunded,
		CountryID:       dto.CountryID,
		LevelID:         dto.LevelID,
		CategoryID:      dto.CategoryID,
		Requirements:    dto.Requirements,
		ApplicationLink: dto.ApplicationLink,
		ImageURL:        dto.ImageURL,
	})
}

func (s *Service) Update(id int, dto *UpdateScholarshipDTO) (models.Scholarship, bool, error) {
	return s.db.UpdateScholarship(id, func(sc models.Scholarship) models.Scholarship {
		if dto.Title != nil {
			sc.Title = *dto.Title
		}
		if dto.Slug != nil {
			sc.Slug = *dto.Slug
		}
		if dto.Description != nil {
			sc.Description = *dto.Description
		}
		if dto.Deadline != nil {
			sc.Deadline = *dto.Deadline
		}
		if dto.Amount != nil {
			sc.Amount = *dto.Amount
		}
		if dto.IsFeatured != nil {
			sc.IsFeatured = *dto.IsFeatured
		}
		if dto.IsFullyFunded != nil {
			sc.IsFullyFunded = *dto.IsFullyFunded
		}
		if dto.CountryID != nil {
			sc.CountryID = dto.CountryID
		}
		if dto.LevelID != nil {
			sc.LevelID = dto.LevelID
		}
		if dto.CategoryID != nil {
			sc.CategoryID = dto.CategoryID
		}
		if dto.Requirements != nil {
			sc.Requirements = *dto.Requirements
		}
		if dto.ApplicationLink != nil {
			sc.ApplicationLink = *dto.ApplicationLink
		}
		if dto.ImageURL != nil {
			sc.ImageURL = *dto.ImageURL
		}
		return sc
	})
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/scholarships")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)

	a := g.Group("", authMW, adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// list applies the query-string filters with AND semantics; an unfiltered
// request returns everything in id order. Each taxonomy filter answers to
// its short name and its Id-suffixed alias.
func (h *Handler) list(c *gin.Context) {
	var filter store.ScholarshipFilter
	if v, ok := c.GetQuery("featured"); ok {
		featured := v == "true"
		filter.IsFeatured = &featured
	}
	var bad bool
	filter.CountryID, bad = intQuery(c, "country", "countryId")
	if bad {
		return
	}
	filter.LevelID, bad = intQuery(c, "level", "levelId")
	if bad {
		return
	}
	filter.CategoryID, bad = intQuery(c, "category", "categoryId")
	if bad {
		return
	}
	response.OK(c, h.svc.db.ListScholarships(filter))
}

func (h *Handler) featured(c *gin.Context) {
	featured := true
	response.OK(c, h.svc.db.ListScholarships(store.ScholarshipFilter{IsFeatured: &featured}))
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return
	}
	sc, ok := h.svc.db.GetScholarship(id)
	if !ok {
		response.NotFound(c, "Scholarship not found")
		return
	}
	response.OK(c, sc)
}

func (h *Handler) getBySlug(c *gin.Context) {
	sc, ok := h.svc.db.GetScholarshipBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Scholarship not found")
		return
	}
	response.OK(c, sc)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateScholarshipDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sc, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Scholarship slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, sc)
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return
	}
	var dto UpdateScholarshipDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sc, found, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Scholarship slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Scholarship not found")
		return
	}
	response.OK(c, sc)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return
	}
	if !h.svc.db.DeleteScholarship(id) {
		response.NotFound(c, "Scholarship not found")
		return
	}
	response.NoContent(c)
}

// intQuery reads the first present query parameter among names. The second
// return is true when the value failed to parse and a 400 was written.
func intQuery(c *gin.Context, names ...string) (*int, bool) {
	for _, name := range names {
		v, ok := c.GetQuery(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid "+name)
			return nil, true
		}
		return &n, false
	}
	return nil, false
}
