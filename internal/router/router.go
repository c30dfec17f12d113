package router

import (
	"github.com/gin-gonic/gin"

	"majlis/internal/config"
	"majlis/internal/handler"
	"majlis/internal/middleware"
	"majlis/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	memberH *handler.MemberHandler,
	groupH *handler.GroupHandler,
	occasionH *handler.OccasionHandler,
	attendanceH *handler.AttendanceHandler,
	analyticsH *handler.AnalyticsHandler,
	reportH *handler.ReportHandler,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Health checks
	r.GET("/healthz", healthH.Live)
	r.GET("/readyz", healthH.Ready)

	// Legacy upload endpoint. It manages its own CORS and auth so the
	// response bodies stay exactly what deployed clients parse.
	r.POST("/s3-upload", uploadH.Presign)
	r.OPTIONS("/s3-upload", uploadH.Options)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/me", authH.Me)

	members := protected.Group("/members")
	members.POST("", memberH.Create)
	members.GET("", memberH.List)
	members.GET("/:id", memberH.GetByID)
	members.PUT("/:id", memberH.Update)
	members.DELETE("/:id", memberH.Delete)
	members.POST("/:id/photo", memberH.UploadPhoto)
	members.GET("/:id/photo", memberH.PhotoURL)
	members.GET("/:id/attendance", attendanceH.ListByMember)
	members.GET("/:id/attendance/stats", attendanceH.MemberStats)

	groups := protected.Group("/groups")
	groups.POST("", groupH.Create)
	groups.GET("", groupH.List)
	groups.GET("/:id", groupH.GetByID)
	groups.PUT("/:id", groupH.Update)
	groups.DELETE("/:id", groupH.Delete)
	groups.GET("/:id/members", groupH.ListMembers)
	groups.PUT("/:id/members", groupH.SetMembers)
	groups.POST("/:id/members/:memberId", groupH.AddMember)
	groups.DELETE("/:id/members/:memberId", groupH.RemoveMember)

	occasions := protected.Group("/occasions")
	occasions.POST("", occasionH.Create)
	occasions.GET("", occasionH.List)
	occasions.GET("/:id", occasionH.GetByID)
	occasions.PUT("/:id", occasionH.Update)
	occasions.DELETE("/:id", occasionH.Delete)
	occasions.GET("/:id/attendance", attendanceH.ListByOccasion)

	protected.POST("/attendance", attendanceH.Mark)

	analytics := protected.Group("/analytics")
	analytics.GET("/dashboard", analyticsH.Dashboard)
	analytics.GET("/trends", analyticsH.Trends)
	analytics.GET("/groups", analyticsH.GroupPerformance)
	analytics.GET("/rankings", analyticsH.Rankings)

	protected.GET("/reports/attendance", reportH.AttendanceRegister)

	return r
}
