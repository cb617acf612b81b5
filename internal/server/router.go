package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobguard/internal/analysis"
	"jobguard/internal/records"
	"jobguard/internal/session"
	"jobguard/internal/shared/config"
	"jobguard/internal/shared/metrics"
	"jobguard/internal/shared/server/middleware"
	"jobguard/internal/shared/server/respond"
)

// Deps carries the wired services the HTTP facade exposes.
type Deps struct {
	Session  *session.Manager
	Auth     Authenticator
	Records  *records.Store
	Analysis *analysis.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	h := &Handler{Deps: deps}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	api.POST("/session/login", h.login)
	api.POST("/session/signup", h.signup)
	api.POST("/session/logout", h.logout)
	api.GET("/session/current", h.currentSession)

	guarded := api.Group("", h.requireSession)
	guarded.POST("/analyses", h.analyze)
	guarded.GET("/analyses", h.listAnalyses)
	guarded.GET("/analyses/latest", h.latestAnalysis)
	guarded.GET("/analyses/:id", h.getAnalysis)
	guarded.DELETE("/analyses/:id", h.deleteAnalysis)
	guarded.DELETE("/analyses", h.clearAnalyses)
	guarded.GET("/stats", h.stats)
	guarded.GET("/rankings", h.rankings)
	guarded.POST("/resume", h.uploadResume)
	guarded.GET("/resume", h.getResume)
	guarded.DELETE("/resume", h.removeResume)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
