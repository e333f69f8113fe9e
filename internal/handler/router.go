package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Colleges  *CollegeHandler
	Students  *StudentHandler
	Teachers  *TeacherHandler
	ExamTasks *ExamTaskHandler
	Results   *ResultHandler
	Health    *HealthHandler
}

// RouterConfig controls route mounting.
type RouterConfig struct {
	APIPrefix  string
	EnableDocs bool
}

// Register mounts all routes on r. identity resolves the acting college for
// college scoped routes.
func Register(r *gin.Engine, h Handlers, identity gin.HandlerFunc, cfg RouterConfig) {
	r.GET("/health", h.Health.Health)
	r.GET("/ready", h.Health.Ready)
	r.GET("/metrics", h.Health.Prometheus)
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/register", h.Colleges.Register)
	api.POST("/login", h.Colleges.Login)
	// Kept for clients that still call the old ping route.
	api.GET("/test", h.Health.Ready)

	api.POST("/task", h.ExamTasks.Create)
	api.GET("/task", h.ExamTasks.List)
	api.PATCH("/task", h.ExamTasks.UpdateStatus)

	api.POST("/results", h.Results.Post)
	api.GET("/results", h.Results.List)
	api.GET("/results/export", h.Results.Export)

	scoped := api.Group("", identity)
	scoped.GET("/colleges/me", h.Colleges.Me)
	scoped.POST("/teachers/create", h.Teachers.Create)
	scoped.POST("/teachers", h.Teachers.Create)
	scoped.GET("/teachers", h.Teachers.List)
	scoped.POST("/students/bulk-create", h.Students.BulkCreate)
	scoped.POST("/students/range-create", h.Students.RangeCreate)
	scoped.GET("/students", h.Students.List)
}
