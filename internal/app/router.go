package app

import (
	"career_guidance_backend/docs"
	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/middleware"
	"career_guidance_backend/internal/model"
	"career_guidance_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)
	a.registerAssessmentRoutes(router, c, cfg)
	a.registerCommunityRoutes(router, c, cfg)
	a.registerAuthorizedRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/quote", c.quote.GetCurrentQuote)

		// Directory reads are public; writes live under /api/admin.
		public.GET("/universities", c.catalog.ListUniversities)
		public.GET("/universities/:id", c.catalog.GetUniversity)
		public.GET("/companies", c.catalog.ListCompanies)
		public.GET("/companies/:id", c.catalog.GetCompany)
		public.GET("/courses", c.catalog.ListCourses)
		public.GET("/courses/:id", c.catalog.GetCourse)
	}
}

// Assessment routes accept both logged-in users and anonymous sessions. The
// optional auth middleware attaches claims when present; attempt ownership is
// checked per request against claims or the session token header.
func (a *App) registerAssessmentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	assessments := router.Group("/api/assessments")
	assessments.Use(middleware.TryAuthMiddleware(cfg))
	{
		assessments.GET("", c.assessment.ListAssessments)
		assessments.GET("/:slug/questions", c.assessment.ListQuestions)
		assessments.POST("/:slug/start", c.assessment.StartAttempt)

		assessments.GET("/attempts/:id", c.assessment.GetAttempt)
		assessments.POST("/attempts/:id/answer", c.assessment.SubmitAnswer)
		assessments.POST("/attempts/:id/complete", c.assessment.CompleteAttempt)
		assessments.GET("/attempts/:id/results", c.assessment.GetResults)
		assessments.GET("/attempts/:id/export", c.assessment.ExportReport)
		assessments.GET("/attempts/:id/export/pdf", c.assessment.ExportReportPDF)
	}
}

func (a *App) registerCommunityRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	community := router.Group("/api/community")
	{
		community.GET("/links", c.community.ListLinks)
		community.GET("/links/:id", c.community.GetLink)
		community.GET("/links/:id/comments", c.community.ListComments)

		authorized := community.Group("/")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("/links", c.community.ShareLink)
			authorized.DELETE("/links/:id", c.community.DeleteLink)
			authorized.POST("/links/:id/upvote", c.community.UpvoteLink)
			authorized.POST("/links/:id/comments", c.community.AddComment)
			authorized.DELETE("/comments/:id", c.community.DeleteComment)
		}
	}
}

func (a *App) registerAuthorizedRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.Profile)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/assessments", c.assessment.CreateAssessment)
		admin.PUT("/assessments/:id", c.assessment.UpdateAssessment)
		admin.POST("/assessments/:id/questions", c.assessment.CreateQuestion)
		admin.PUT("/questions/:id", c.assessment.UpdateQuestion)
		admin.DELETE("/questions/:id", c.assessment.DeleteQuestion)

		admin.POST("/universities", c.catalog.CreateUniversity)
		admin.PUT("/universities/:id", c.catalog.UpdateUniversity)
		admin.DELETE("/universities/:id", c.catalog.DeleteUniversity)
		admin.POST("/companies", c.catalog.CreateCompany)
		admin.PUT("/companies/:id", c.catalog.UpdateCompany)
		admin.DELETE("/companies/:id", c.catalog.DeleteCompany)
		admin.POST("/courses", c.catalog.CreateCourse)
		admin.PUT("/courses/:id", c.catalog.UpdateCourse)
		admin.DELETE("/courses/:id", c.catalog.DeleteCourse)

		admin.GET("/quotes", c.quote.GetAllQuotes)
		admin.POST("/quotes", c.quote.CreateQuote)
		admin.PUT("/quotes/:id", c.quote.UpdateQuote)
		admin.DELETE("/quotes/:id", c.quote.DeleteQuote)
		admin.POST("/quotes/:id/switch", c.quote.SwitchQuote)
	}
}
