// Package user manages site accounts. All routes are admin-only.
package user

import (
	"errors"

	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"    binding:"required,email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type Service struct {
	db *store.Store
}

func NewService(db *store.Store) *Service { return &Service{db: db} }

// Create hashes the password and stores the account. Role defaults to the
// regular user role.
func (s *Service) Create(dto *CreateUserDTO) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	role := dto.Role
	if role == "" {
		role = models.RoleUser
	}
	return s.db.CreateUser(models.User{
		Username: dto.Username,
		Password: string(hash),
		Email:    dto.Email,
		FullName: dto.FullName,
		Role:     role,
	})
}

func (s *Service) List() []models.User {
	return s.db.ListUsers()
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/users", authMW, adminMW)
	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			response.Conflict(c, "Username or email already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, user)
}

func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}
