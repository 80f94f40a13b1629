// Package stats aggregates content counts for the admin dashboard.
package stats

import (
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/fullsco/core/internal/store"
	"github.com/gin-gonic/gin"
)

type Overview struct {
	Scholarships   int `json:"scholarships"`
	Posts          int `json:"posts"`
	SuccessStories int `json:"successStories"`
	Categories     int `json:"categories"`
	Levels         int `json:"levels"`
	Countries      int `json:"countries"`
	Tags           int `json:"tags"`
	Subscribers    int `json:"subscribers"`
	Users          int `json:"users"`
	TotalViews     int `json:"totalViews"`
}

type Service struct {
	db *store.Store
}

func NewService(db *store.Store) *Service { return &Service{db: db} }

func (s *Service) Overview() Overview {
	posts := s.db.ListPosts(store.PostFilter{})
	totalViews := 0
	for _, p := range posts {
		totalViews += p.Views
	}
	return Overview{
		Scholarships:   len(s.db.ListScholarships(store.ScholarshipFilter{})),
		Posts:          len(posts),
		SuccessStories: len(s.db.ListSuccessStories()),
		Categories:     len(s.db.ListCategories()),
		Levels:         len(s.db.ListLevels()),
		Countries:      len(s.db.ListCountries()),
		Tags:           len(s.db.ListTags()),
		Subscribers:    len(s.db.ListSubscribers()),
		Users:          len(s.db.ListUsers()),
		TotalViews:     totalViews,
	}
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/stats", authMW, adminMW, h.overview)
}

func (h *Handler) overview(c *gin.Context) {
	response.OK(c, h.svc.Overview())
}
