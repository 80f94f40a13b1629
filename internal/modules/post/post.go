// Package post serves blog articles and their tag links.
package post

import (
	"errors"
	"strconv"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/markdown"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

// excerptLimit caps derived excerpts at card length.
const excerptLimit = 160

type CreatePostDTO struct {
	Title           string `json:"title"   binding:"required"`
	Slug            string `json:"slug"    binding:"required"`
	Content         string `json:"content" binding:"required"`
	Excerpt         string `json:"excerpt"`
	AuthorID        *int   `json:"authorId"`
	ImageURL        string `json:"imageUrl"`
	IsFeatured      bool   `json:"isFeatured"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

type UpdatePostDTO struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Content         *string `json:"content"`
	Excerpt         *string `json:"excerpt"`
	AuthorID        *int    `json:"authorId"`
	ImageURL        *string `json:"imageUrl"`
	IsFeatured      *bool   `json:"isFeatured"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
}

type Service struct {
	db *store.Store
}

func NewService(db *store.Store) *Service { return &Service{db: db} }

// Create stores the article. A missing excerpt is derived from the
// markdown content.
func (s *Service) Create(dto *CreatePostDTO) (models.Post, error) {
	excerpt := dto.Excerpt
	if excerpt == "" {
		excerpt = markdown.Excerpt(dto.Content, excerptLimit)
	}
	return s.db.CreatePost(models.Post{
		Title:           dto.Title,
		Slug:            dto.Slug,
		Content:         dto.Content,
		Excerpt:         excerpt,
		AuthorID:        dto.AuthorID,
		ImageURL:        dto.ImageURL,
		IsFeatured:      dto.IsFeatured,
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
	})
}

func (s *Service) Update(id int, dto *UpdatePostDTO) (models.Post, bool, error) {
	return s.db.UpdatePost(id, func(p models.Post) models.Post {
		if dto.Title != nil {
			p.Title = *dto.Title
		}
		if dto.Slug != nil {
			p.Slug = *dto.Slug
		}
		if dto.Content != nil {
			p.Content = *dto.Content
			if dto.Excerpt == nil {
				p.Excerpt = markdown.Excerpt(*dto.Content, excerptLimit)
			}
		}
		if dto.Excerpt != nil {
			p.Excerpt = *dto.Excerpt
		}
		if dto.AuthorID != nil {
			p.AuthorID = dto.AuthorID
		}
		if dto.ImageURL != nil {
			p.ImageURL = *dto.ImageURL
		}
		if dto.IsFeatured != nil {
			p.IsFeatured = *dto.IsFeatured
		}
		if dto.MetaTitle != nil {
			p.MetaTitle = *dto.MetaTitle
		}
		if dto.MetaDescription != nil {
			p.MetaDescription = *dto.MetaDescription
		}
		return p
	})
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/posts")
	g.GET("", h.list)
	g.GET("/featured", h.featured)
	g.GET("/slug/:slug", h.getBySlug)
	g.GET("/:id", h.get)
	g.GET("/:id/tags", h.listTags)

	a := g.Group("", authMW, adminMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
	a.POST("/:id/tags/:tagId", h.addTag)
	a.DELETE("/:id/tags/:tagId", h.removeTag)
}

// list filters by ?featured and ?author (authorId also answers).
func (h *Handler) list(c *gin.Context) {
	var filter store.PostFilter
	if v, ok := c.GetQuery("featured"); ok {
		featured := v == "true"
		filter.IsFeatured = &featured
	}
	for _, name := range []string{"author", "authorId"} {
		v, ok := c.GetQuery(name)
		if !ok || v == "" {
			continue
		}
		id, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid "+name)
			return
		}
		filter.AuthorID = &id
		break
	}
	response.OK(c, h.svc.db.ListPosts(filter))
}

func (h *Handler) featured(c *gin.Context) {
	featured := true
	response.OK(c, h.svc.db.ListPosts(store.PostFilter{IsFeatured: &featured}))
}

// get returns one article and counts the read.
func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, ok := h.svc.db.IncrementPostViews(id)
	if !ok {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, p)
}

func (h *Handler) getBySlug(c *gin.Context) {
	p, ok := h.svc.db.GetPostBySlug(c.Param("slug"))
	if !ok {
		response.NotFound(c, "Post not found")
		return
	}
	p, _ = h.svc.db.IncrementPostViews(p.ID)
	response.OK(c, p)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Post slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, found, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Post slug already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.svc.db.DeletePost(id) {
		response.NotFound(c, "Post not found")
		return
	}
	response.NoContent(c)
}

func (h *Handler) listTags(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, exists := h.svc.db.GetPost(id); !exists {
		response.NotFound(c, "Post not found")
		return
	}
	response.OK(c, h.svc.db.GetPostTags(id))
}

func (h *Handler) addTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tagID, err := strconv.Atoi(c.Param("tagId"))
	if err != nil {
		response.BadRequest(c, "Invalid tag ID")
		return
	}
	if _, exists := h.svc.db.GetPost(id); !exists {
		response.NotFound(c, "Post not found")
		return
	}
	if _, exists := h.svc.db.GetTag(tagID); !exists {
		response.NotFound(c, "Tag not found")
		return
	}
	row, err := h.svc.db.AddTagToPost(id, tagID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, row)
}

func (h *Handler) removeTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tagID, err := strconv.Atoi(c.Param("tagId"))
	if err != nil {
		response.BadRequest(c, "Invalid tag ID")
		return
	}
	if !h.svc.db.RemoveTagFromPost(id, tagID) {
		response.NotFound(c, "Tag is not linked to this post")
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
