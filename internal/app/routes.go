package app

import (
	"time"

	"github.com/fullsco/core/internal/metrics"
	"github.com/fullsco/core/internal/middleware"
	"github.com/fullsco/core/internal/modules/auth"
	"github.com/fullsco/core/internal/modules/post"
	"github.com/fullsco/core/internal/modules/scholarship"
	"github.com/fullsco/core/internal/modules/seo"
	"github.com/fullsco/core/internal/modules/stats"
	"github.com/fullsco/core/internal/modules/story"
	"github.com/fullsco/core/internal/modules/subscriber"
	"github.com/fullsco/core/internal/modules/tag"
	"github.com/fullsco/core/internal/modules/taxonomy"
	"github.com/fullsco/core/internal/modules/user"
	"github.com/fullsco/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth(a.sessions, db)
	adminMW := middleware.AdminOnly()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "pong", "time": time.Now().UTC()})
	})

	auth.NewHandler(auth.NewService(db, a.sessions)).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW, adminMW)

	taxonomy.NewCategoryHandler(taxonomy.NewCategoryService(db)).RegisterRoutes(api, authMW, adminMW)
	taxonomy.NewLevelHandler(db).RegisterRoutes(api, authMW, adminMW)
	taxonomy.NewCountryHandler(db).RegisterRoutes(api, authMW, adminMW)

	scholarship.NewHandler(scholarship.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	post.NewHandler(post.NewService(db)).RegisterRoutes(api, authMW, adminMW)
	tag.NewHandler(db).RegisterRoutes(api, authMW, adminMW)
	story.NewHandler(db).RegisterRoutes(api, authMW, adminMW)

	subscriber.NewHandler(db).RegisterRoutes(api, authMW, adminMW)
	seo.NewHandler(db, a.cfg.SEO).RegisterRoutes(api, authMW, adminMW)
	stats.NewHandler(stats.NewService(db)).RegisterRoutes(api, authMW, adminMW)
}
