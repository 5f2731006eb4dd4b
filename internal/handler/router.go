package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/personatable/timetable-api/internal/middleware"
	"github.com/personatable/timetable-api/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth       *AuthHandler
	Settings   *SettingsHandler
	Instructor *InstructorHandler
	Course     *CourseHandler
	Timetable  *TimetableHandler
	Transfer   *TransferHandler
	Export     *ExportHandler
	Metrics    *MetricsHandler
}

// RegisterRoutes mounts all routes on the engine. Everything under the API
// prefix except login requires a valid access token.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth *service.AuthService) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.JWT(auth))

	protected.GET("/auth/me", h.Auth.Me)

	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	protected.GET("/instructors", h.Instructor.List)
	protected.POST("/instructors", h.Instructor.Create)
	protected.GET("/instructors/:id", h.Instructor.Get)
	protected.PUT("/instructors/:id", h.Instructor.Update)
	protected.PUT("/instructors/:id/availability", h.Instructor.UpdateAvailability)
	protected.DELETE("/instructors/:id", h.Instructor.Delete)

	protected.GET("/courses", h.Course.List)
	protected.POST("/courses", h.Course.Create)
	protected.GET("/courses/sort-preview", h.Course.SortPreview)
	protected.GET("/courses/:id", h.Course.Get)
	protected.PUT("/courses/:id", h.Course.Update)
	protected.DELETE("/courses/:id", h.Course.Delete)

	protected.POST("/timetable/generate", h.Timetable.Generate)
	protected.GET("/timetable", h.Timetable.Get)
	protected.DELETE("/timetable", h.Timetable.Clear)

	protected.GET("/transfer/export", h.Transfer.Export)
	protected.POST("/transfer/import", h.Transfer.Import)

	protected.GET("/export/csv", h.Export.CSV)
	protected.GET("/export/pdf", h.Export.PDF)

	protected.GET("/system/metrics", h.Metrics.Snapshot)
}
