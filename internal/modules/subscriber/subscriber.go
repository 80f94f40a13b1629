// Package subscriber handles newsletter signups.
package subscriber

import (
	"errors"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type SubscribeDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type Handler struct {
	db *store.Store
}

func NewHandler(db *store.Store) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/subscribers", h.subscribe)
	rg.GET("/subscribers", authMW, adminMW, h.list)
}

// subscribe is the one public write endpoint on the site.
func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	sub, err := h.db.CreateSubscriber(models.Subscriber{Email: dto.Email})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Email already subscribed")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, sub)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.db.ListSubscribers())
}
