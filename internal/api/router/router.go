package router

import (
	"net/http"
	"regexp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/network/config"
	_ "github.com/d60-Lab/network/docs"
	"github.com/d60-Lab/network/internal/api/handler"
	"github.com/d60-Lab/network/internal/api/middleware"
	"github.com/d60-Lab/network/internal/auth"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
	}
}

// New assembles the gin engine: middleware chain, page routes, API routes.
func New(cfg *config.Config, h *handler.Handler, sessions *auth.Manager) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("network"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	r.Use(middleware.Authenticate(sessions))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pages
	r.GET("/", h.Index)
	r.GET("/u/:username", h.Profile)
	r.GET("/following/", middleware.RequireAuthPage(), h.FollowingFeed)
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "login required"})
	})

	// auth
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	// API
	api := r.Group("/api")
	{
		api.POST("/follow/:username", middleware.RequireAuth(), h.ToggleFollow)
		api.GET("/posts", h.Posts)
		api.POST("/posts", h.Posts)
		api.POST("/posts/:id/like", middleware.RequireAuth(), h.ToggleLike)
	}
	return r
}
