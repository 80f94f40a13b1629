// Package seo serves per-page meta tags. Public reads fall back to the
// configured site-wide defaults so every page renders something sensible.
package seo

import (
	"errors"
	"strconv"

	"github.com/fullsco/core/internal/config"
	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type UpsertSeoDTO struct {
	PagePath        string `json:"pagePath" binding:"required"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	OgImage         string `json:"ogImage"`
	Keywords        string `json:"keywords"`
}

type UpdateSeoDTO struct {
	PagePath        *string `json:"pagePath"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	OgImage         *string `json:"ogImage"`
	Keywords        *string `json:"keywords"`
}

type Handler struct {
	db       *store.Store
	defaults config.SEODefaults
}

func NewHandler(db *store.Store, defaults config.SEODefaults) *Handler {
	return &Handler{db: db, defaults: defaults}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/seo-settings/path", h.getByPath)

	g := rg.Group("/seo-settings", authMW, adminMW)
	g.GET("", h.list)
	g.POST("", h.upsert)
	g.PUT("/:id", h.update)
}

// getByPath serves the meta object for ?path=. Pages without a stored row
// get the configured defaults with an id of 0.
func (h *Handler) getByPath(c *gin.Context) {
	path, ok := c.GetQuery("path")
	if !ok || path == "" {
		response.BadRequest(c, "path query parameter is required")
		return
	}
	if setting, found := h.db.GetSeoSettingByPath(path); found {
		response.OK(c, setting)
		return
	}
	response.OK(c, models.SeoSetting{
		PagePath:        path,
		MetaTitle:       h.defaults.MetaTitle,
		MetaDescription: h.defaults.MetaDescription,
	})
}

// upsert creates or overwrites the row for a page path. 201 on create,
// 200 on overwrite.
func (h *Handler) upsert(c *gin.Context) {
	var dto UpsertSeoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	setting, created := h.db.UpsertSeoSetting(models.SeoSetting{
		PagePath:        dto.PagePath,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
		OgImage:         dto.OgImage,
		Keywords:        dto.Keywords,
	})
	if created {
		response.Created(c, setting)
		return
	}
	response.OK(c, setting)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.db.ListSeoSettings())
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ID")
		return
	}
	var dto UpdateSeoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	setting, found, err := h.db.UpdateSeoSetting(id, func(st models.SeoSetting) models.SeoSetting {
		if dto.PagePath != nil {
			st.PagePath = *dto.PagePath
		}
		if dto.MetaTitle != nil {
			st.MetaTitle = *dto.MetaTitle
		}
		if dto.MetaDescription != nil {
			st.MetaDescription = *dto.MetaDescription
		}
		if dto.OgImage != nil {
			st.OgImage = *dto.OgImage
		}
		if dto.Keywords != nil {
			st.Keywords = *dto.Keywords
		}
		return st
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "SEO settings already exist for this page path")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "SEO settings not found")
		return
	}
	response.OK(c, setting)
}
