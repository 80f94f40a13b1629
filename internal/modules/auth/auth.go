// Package auth implements session login for the back-office.
package auth

import (
	"errors"

	"github.com/fullsco/core/internal/middleware"
	"github.com/fullsco/core/internal/models"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/pkg/session"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var errInvalidCredentials = errors.New("Invalid credentials")

type Service struct {
	db  *store.Store
	reg *session.Registry
}

func NewService(db *store.Store, reg *session.Registry) *Service {
	return &Service{db: db, reg: reg}
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords fail identically.
func (s *Service) Login(dto *LoginDTO, ip, ua string) (models.User, string, error) {
	user, ok := s.db.GetUserByUsername(dto.Username)
	if !ok {
		return models.User{}, "", errInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return models.User{}, "", errInvalidCredentials
	}
	token, _, err := s.reg.Issue(user.ID, ip, ua)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Logout revokes the session behind the token. Tokens that don't resolve
// to a live session are ignored; logging out is always safe.
func (s *Service) Logout(token string) {
	if live, ok := s.reg.Resolve(token); ok {
		s.reg.Revoke(live.ID)
	}
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", authMW, h.me)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, token, err := h.svc.Login(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	setSessionCookie(c, token, int(h.svc.reg.TTL().Seconds()))
	response.OK(c, user)
}

func (h *Handler) logout(c *gin.Context) {
	h.svc.Logout(middleware.ExtractToken(c))
	setSessionCookie(c, "", -1)
	response.Message(c, "Logged out successfully")
}

func (h *Handler) me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, user)
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", false, true)
}
