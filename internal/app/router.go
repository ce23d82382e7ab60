package app

import (
	"swingshift_backend/docs"
	"swingshift_backend/internal/config"
	"swingshift_backend/internal/middleware"
	"swingshift_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c, cfg)
}

// Public surface: survey taking, question bank browsing, and the code-scoped
// client portal.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)

		public.GET("/questions", c.question.ListQuestions)
		public.GET("/questions/categories", c.question.Categories)
		public.GET("/questions/:id", c.question.GetQuestion)

		public.GET("/survey/:access_code", c.survey.GetSurvey)
		public.POST("/survey/:access_code/start", c.survey.StartResponse)
		public.POST("/survey/:access_code/answer", c.survey.SubmitAnswer)
		public.POST("/survey/:access_code/complete", c.survey.CompleteResponse)
		public.POST("/survey/:access_code/rate", c.survey.RateSchedule)

		public.POST("/project/:access_code/portal", c.project.PortalAccess)
		public.POST("/project/:access_code/questions/bulk", c.project.ClientSyncQuestions)
	}
}

// Admin surface behind the shared API key.
func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.POST("/questions", c.question.CreateQuestion)
		admin.PUT("/questions/:id", c.question.UpdateQuestion)

		admin.POST("/projects", c.project.CreateProject)
		admin.GET("/projects", c.project.ListProjects)
		admin.GET("/projects/:id", c.project.GetProject)
		admin.PUT("/projects/:id", c.project.UpdateProject)

		admin.GET("/projects/:id/questions", c.project.ListProjectQuestions)
		admin.POST("/projects/:id/questions", c.project.AddQuestion)
		admin.POST("/projects/:id/questions/bulk", c.project.SyncQuestions)
		admin.POST("/projects/:id/custom-questions", c.project.AddCustomQuestion)

		admin.GET("/projects/:id/results", c.results.GetResults)
		admin.GET("/projects/:id/export/csv", c.results.ExportCSV)

		admin.GET("/videos", c.video.ListMasterVideos)
		admin.POST("/videos", c.video.CreateMasterVideo)
		admin.PUT("/videos/:id", c.video.UpdateMasterVideo)

		admin.GET("/projects/:id/schedules", c.video.ListSchedules)
		admin.POST("/projects/:id/schedules/copy", c.video.CopyFromMaster)
		admin.POST("/projects/:id/schedules/upload", c.video.UploadSchedule)
		admin.DELETE("/schedules/:id", c.video.DeleteSchedule)
		admin.GET("/schedules/:id/ratings", c.video.RatingSummary)
	}
}
