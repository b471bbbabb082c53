package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sm8ta/webike_repair_shop/docs"
	"github.com/sm8ta/webike_repair_shop/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const welcomeMessage = "Welcome to the bike servicing API"

type Router struct {
	router *gin.Engine

	mu     sync.Mutex
	server *http.Server
}

func NewRouter(
	cfg *config.HTTP,
	customerHandler *CustomerHandler,
	bikeHandler *BikeHandler,
	serviceRecordHandler *ServiceRecordHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(corsConfig(cfg)))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", home)

	api := router.Group("/api")
	api.GET("", home)

	// Customers routes
	customers := api.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.GetAllCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PUT("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
	}

	// Bikes routes
	bikes := api.Group("/bikes")
	{
		bikes.POST("", bikeHandler.CreateBike)
		bikes.GET("", bikeHandler.GetAllBikes)
		bikes.GET("/:id", bikeHandler.GetBike)
	}

	// Service records routes
	services := api.Group("/services")
	{
		services.POST("", serviceRecordHandler.CreateServiceRecord)
		services.GET("", serviceRecordHandler.GetAllServiceRecords)
		services.GET("/status", serviceRecordHandler.GetPendingOrOverdue)
		services.GET("/:id", serviceRecordHandler.GetServiceRecord)
		services.PUT("/:id/complete", serviceRecordHandler.CompleteServiceRecord)
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, "Route not found")
	})

	return &Router{router: router}, nil
}

// corsConfig allows credentials only for explicitly listed origins. Without
// ALLOWED_ORIGINS any origin is accepted, but never with credentials.
func corsConfig(cfg *config.HTTP) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origins := cfg.Origins(); len(origins) > 0 {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}
	return c
}

// @Summary Welcome
// @Tags home
// @Produce json
// @Success 200 {object} successResponse "Welcome message"
// @Router /api [get]
func home(c *gin.Context) {
	newSuccessResponse(c, http.StatusOK, welcomeMessage, nil)
}

// Serve blocks until the server stops. After Shutdown it returns
// http.ErrServerClosed.
func (r *Router) Serve(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	r.mu.Lock()
	r.server = srv
	r.mu.Unlock()
	return srv.ListenAndServe()
}

func (r *Router) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	srv := r.server
	r.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
