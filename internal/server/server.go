package server

import (
	"context"
	"net/http"
	"time"

	"github.com/amlakhub/amlak-api/internal/config"
	"github.com/amlakhub/amlak-api/internal/handler"
	"github.com/amlakhub/amlak-api/internal/middleware"
	"github.com/amlakhub/amlak-api/internal/models"
	"github.com/amlakhub/amlak-api/internal/ratelimit"
	"github.com/amlakhub/amlak-api/internal/repository"
	"github.com/amlakhub/amlak-api/internal/service"
	"github.com/amlakhub/amlak-api/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router     *gin.Engine
	config     *config.Config
	redis      *storage.RedisClient
	postgres   *storage.Postgres
	quotaStore ratelimit.Store

	authService      *service.AuthService
	analyticsService *service.AnalyticsService

	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	listingHandler    *handler.ListingHandler
	consultantHandler *handler.ConsultantHandler
	blogHandler       *handler.BlogHandler
	offerHandler      *handler.OfferHandler
	leadHandler       *handler.LeadHandler
	videoHandler      *handler.VideoHandler
	uploadHandler     *handler.UploadHandler
	analyticsHandler  *handler.AnalyticsHandler

	httpServer *http.Server
}

// New wires repositories, services and handlers. redis may be nil when the
// in-memory quota store is configured.
func New(cfg *config.Config, redis *storage.RedisClient, postgres *storage.Postgres) *Server {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	userRepo := repository.NewUserRepository(postgres)
	listingRepo := repository.NewListingRepository(postgres)
	consultantRepo := repository.NewConsultantRepository(postgres)
	blogRepo := repository.NewBlogRepository(postgres)
	offerRepo := repository.NewOfferRepository(postgres)
	leadRepo := repository.NewLeadRepository(postgres)
	videoRepo := repository.NewVideoRepository(postgres)
	requestLogRepo := repository.NewRequestLogRepository(postgres)

	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	analyticsService := service.NewAnalyticsService(requestLogRepo)

	s := &Server{
		router:           router,
		config:           cfg,
		redis:            redis,
		postgres:         postgres,
		quotaStore:       newQuotaStore(cfg, redis),
		authService:      authService,
		analyticsService: analyticsService,

		authHandler:       handler.NewAuthHandler(authService),
		userHandler:       handler.NewUserHandler(authService),
		listingHandler:    handler.NewListingHandler(listingRepo),
		consultantHandler: handler.NewConsultantHandler(consultantRepo),
		blogHandler:       handler.NewBlogHandler(blogRepo),
		offerHandler:      handler.NewOfferHandler(offerRepo),
		leadHandler:       handler.NewLeadHandler(leadRepo),
		videoHandler:      handler.NewVideoHandler(videoRepo),
		uploadHandler:     handler.NewUploadHandler(cfg.Uploads.Dir),
		analyticsHandler:  handler.NewAnalyticsHandler(analyticsService),
	}

	middleware.InitRequestLogger(postgres, 1000)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func newQuotaStore(cfg *config.Config, redis *storage.RedisClient) ratelimit.Store {
	if cfg.RateLimitStore == "redis" && redis != nil {
		log.Info().Msg("using redis quota store")
		return ratelimit.NewRedisStore(redis)
	}

	return ratelimit.NewMemoryStore()
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.SecurityHeaders())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "token")
	s.router.Use(cors.New(corsConfig))

	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.RateLimit(s.quotaStore))
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.Static("/uploads", s.config.Uploads.Dir)

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.authHandler.Register)
			auth.POST("/login", s.authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(s.authService), s.authHandler.Me)
		}

		// Public marketplace pages
		api.GET("/listings", s.listingHandler.List)
		api.GET("/listings/:id", s.listingHandler.Get)
		api.GET("/consultants", s.consultantHandler.List)
		api.GET("/consultants/:id", s.consultantHandler.Get)
		api.GET("/blogs", s.blogHandler.List)
		api.GET("/blogs/:id", s.blogHandler.Get)
		api.GET("/offers", s.offerHandler.List)
		api.GET("/videos", s.videoHandler.List)
		api.POST("/leads", s.leadHandler.Create)

		admin := api.Group("/admin", middleware.RequireAuth(s.authService))
		{
			// Any signed-in role may see the user directory
			admin.GET("/users", middleware.RequireRoles(models.AllRoles...), s.userHandler.List)

			// Role changes and account removal are superadmin-only
			admin.PATCH("/users/:id/role", middleware.RequireRoles(models.RoleSuperadmin), s.userHandler.UpdateRole)
			admin.DELETE("/users/:id", middleware.RequireRoles(models.RoleSuperadmin), s.userHandler.Delete)

			content := admin.Group("", middleware.RequireRoles(models.RoleAdmin, models.RoleSuperadmin))
			{
				content.POST("/listings", s.listingHandler.Create)
				content.PATCH("/listings/:id", s.listingHandler.Update)
				content.DELETE("/listings/:id", s.listingHandler.Delete)

				content.POST("/consultants", s.consultantHandler.Create)
				content.PATCH("/consultants/:id", s.consultantHandler.Update)
				content.DELETE("/consultants/:id", s.consultantHandler.Delete)

				content.POST("/blogs", s.blogHandler.Create)
				content.PATCH("/blogs/:id", s.blogHandler.Update)
				content.DELETE("/blogs/:id", s.blogHandler.Delete)

				content.POST("/offers", s.offerHandler.Create)
				content.DELETE("/offers/:id", s.offerHandler.Delete)

				content.POST("/videos", s.videoHandler.Create)
				content.DELETE("/videos/:id", s.videoHandler.Delete)

				content.GET("/leads", s.leadHandler.List)
				content.DELETE("/leads/:id", s.leadHandler.Delete)

				content.POST("/uploads", s.uploadHandler.Create)

				content.GET("/analytics", s.analyticsHandler.GetSummary)
			}
		}
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	dbHealthy := true
	if err := s.postgres.Ping(c.Request.Context()); err != nil {
		dbHealthy = false
		log.Error().Err(err).Msg("database health check failed")
	}

	redisHealthy := true
	if s.redis != nil {
		if err := s.redis.Ping(c.Request.Context()); err != nil {
			redisHealthy = false
			log.Error().Err(err).Msg("redis health check failed")
		}
	}

	status := "healthy"
	statusCode := http.StatusOK

	if !dbHealthy || !redisHealthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"service":   "amlak-api",
		"timestamp": time.Now().Unix(),
		"checks": gin.H{
			"database": dbHealthy,
			"redis":    redisHealthy,
		},
	})
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	log.Info().Str("addr", addr).Str("environment", s.config.Server.Environment).Msg("starting server")

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
