package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/controller"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/service"
	"career_guidance_backend/pkg/database"
	"career_guidance_backend/pkg/logger"
	"career_guidance_backend/pkg/monitoring"
	"career_guidance_backend/pkg/security"
	"career_guidance_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	assessment *repository.AssessmentRepository
	attempt    *repository.AttemptRepository
	report     *repository.ReportRepository
	catalog    *repository.CatalogRepository
	community  *repository.CommunityRepository
	quote      *repository.QuoteRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	report     *service.ReportService
	assessment *service.AssessmentService
	export     *service.ExportService
	catalog    *service.CatalogService
	community  *service.CommunityService
	quote      *service.QuoteService
}

type controllers struct {
	auth       *controller.AuthController
	assessment *controller.AssessmentController
	catalog    *controller.CatalogController
	community  *controller.CommunityController
	quote      *controller.QuoteController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		attempt:    repository.NewAttemptRepository(db),
		report:     repository.NewReportRepository(db),
		catalog:    repository.NewCatalogRepository(db),
		community:  repository.NewCommunityRepository(db),
		quote:      repository.NewQuoteRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.report = service.NewReportService(repos.attempt, repos.report)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.attempt, s.report, rdb)
	s.export = service.NewExportService(s.assessment, s.storage)
	s.catalog = service.NewCatalogService(repos.catalog)
	s.community = service.NewCommunityService(repos.community)
	s.quote = service.NewQuoteService(repos.quote)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		assessment: controller.NewAssessmentController(s.assessment, s.export),
		catalog:    controller.NewCatalogController(s.catalog),
		community:  controller.NewCommunityController(s.community),
		quote:      controller.NewQuoteController(s.quote),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// The open-attempt resume cache is an optimization, not a dependency.
		logger.Log.Warn("Redis unavailable, attempt resume cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-guidance", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ReloadConfig applies hot-reloadable settings from a rewritten config file.
// JWT parameters take effect immediately; everything bound at startup (ports,
// database, middleware chains) needs a restart.
func (a *App) ReloadConfig(newCfg *config.Config) {
	a.Config.JWT = newCfg.JWT
	a.Config.RateLimit = newCfg.RateLimit
	logger.Log.Info("Configuration reloaded")
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	defer logger.Log.Sync()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
