package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swingshift_backend/internal/config"
	"swingshift_backend/internal/controller"
	"swingshift_backend/internal/repository"
	"swingshift_backend/internal/service"
	"swingshift_backend/pkg/database"
	"swingshift_backend/pkg/logger"
	"swingshift_backend/pkg/monitoring"
	"swingshift_backend/pkg/security"
	"swingshift_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	question        *repository.QuestionRepository
	project         *repository.ProjectRepository
	projectQuestion *repository.ProjectQuestionRepository
	response        *repository.ResponseRepository
	video           *repository.VideoRepository
	normative       *repository.NormativeRepository
}

type services struct {
	question    *service.QuestionService
	project     *service.ProjectService
	questionSet *service.QuestionSetService
	survey      *service.SurveyService
	results     *service.ResultsService
	export      *service.ExportService
	video       *service.VideoService
	storage     *service.StorageService
}

type controllers struct {
	question *controller.QuestionController
	project  *controller.ProjectController
	survey   *controller.SurveyController
	results  *controller.ResultsController
	video    *controller.VideoController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question:        repository.NewQuestionRepository(db),
		project:         repository.NewProjectRepository(db),
		projectQuestion: repository.NewProjectQuestionRepository(db),
		response:        repository.NewResponseRepository(db),
		video:           repository.NewVideoRepository(db),
		normative:       repository.NewNormativeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.question = service.NewQuestionService(repos.question)
	s.project = service.NewProjectService(repos.project)
	s.questionSet = service.NewQuestionSetService(repos.question, repos.projectQuestion)
	s.survey = service.NewSurveyService(repos.response)
	s.results = service.NewResultsService(repos.projectQuestion, repos.response, repos.normative)
	s.export = service.NewExportService(repos.project, repos.projectQuestion, repos.response)
	s.video = service.NewVideoService(repos.video, s.storage, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		question: controller.NewQuestionController(s.question),
		project:  controller.NewProjectController(s.project, s.questionSet),
		survey:   controller.NewSurveyController(s.survey, s.project, s.questionSet, s.video),
		results:  controller.NewResultsController(s.results, s.export, s.project),
		video:    controller.NewVideoController(s.video, s.project),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("swingshift-survey", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
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

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
