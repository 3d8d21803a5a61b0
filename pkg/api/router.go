package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/smarthome/pkg/api/handlers"
	"github.com/urmzd/smarthome/pkg/device/schema"
	"github.com/urmzd/smarthome/pkg/hub"
	"github.com/urmzd/smarthome/pkg/metrics"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine    *gin.Engine
	hub       *hub.Hub
	validator *schema.Validator
	loc       *time.Location
}

// NewRouter creates a new API router over h. Security log timestamps are
// rendered in loc.
func NewRouter(h *hub.Hub, validator *schema.Validator, loc *time.Location) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:    engine,
		hub:       h,
		validator: validator,
		loc:       loc,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	r.engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	healthHandler := handlers.NewHealthHandler(r.hub)
	r.engine.GET("/health", healthHandler.Health)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		devicesHandler := handlers.NewDevicesHandler(r.hub)
		controlHandler := handlers.NewControlHandler(r.hub, r.validator)
		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.GET("/:id/status", devicesHandler.GetStatus)
			devices.POST("/:id/on", devicesHandler.TurnOn)
			devices.POST("/:id/off", devicesHandler.TurnOff)
			devices.POST("/:id/toggle", devicesHandler.Toggle)

			devices.GET("/:id/state", controlHandler.GetState)
			devices.POST("/:id/state", controlHandler.SetState)
		}

		hubHandler := handlers.NewHubHandler(r.hub)
		bulk := v1.Group("/hub")
		{
			bulk.POST("/on", hubHandler.TurnOnAll)
			bulk.POST("/off", hubHandler.TurnOffAll)
			bulk.GET("/status", hubHandler.Status)
		}

		securityHandler := handlers.NewSecurityHandler(r.hub, r.loc)
		security := v1.Group("/security")
		{
			security.POST("/alarm/trigger", securityHandler.TriggerAlarm)
			security.POST("/alarm/reset", securityHandler.ResetAlarm)
			security.POST("/motion", securityHandler.DetectMotion)
			security.POST("/camera/start", securityHandler.StartRecording)
			security.POST("/camera/stop", securityHandler.StopRecording)
			security.PUT("/sensitivity", securityHandler.SetSensitivity)
			security.GET("/logs", securityHandler.Logs)
			security.GET("/events", securityHandler.Events)
		}
	}
}

// Handler returns the router as an http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
