package taxonomy

import (
	"errors"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type CreateLevelDTO struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type LevelHandler struct {
	db *store.Store
}

func NewLevelHandler(db *store.Store) *LevelHandler { return &LevelHandler{db: db} }

func (h *LevelHandler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/levels")
	g.GET("", h.list)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)

	g.POST("", authMW, adminMW, h.create)
}

func (h *LevelHandler) list(c *gin.Context) {
	response.OK(c, h.db.ListLevels())
}

func (h *LevelHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	level, ok := h.db.GetLevel(id)
	if !ok {
		response.NotFound(c, "Level not found")
		return
	}
	response.OK(c, level)
}

func (h *LevelHandler) getBySlug(c *gin.Context) {
	level, ok := h.db.GetLevelBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Level not found")
		return
	}
	response.OK(c, level)
}

func (h *LevelHandler) create(c *gin.Context) {
	var dto CreateLevelDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	level, err := h.db.CreateLevel(models.Level{Name: dto.Name, Slug: dto.Slug})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Level slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, level)
}
