package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/handlers"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/middleware"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/routes"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/calendar"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/principles"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/cache"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/persistence/filestore"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/scheduler"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/config"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger(cfg.Logging.Level)
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    cfg.CORS.AllowedMethods,
		AllowHeaders:    cfg.CORS.AllowedHeaders,
		MaxAge:          12 * time.Hour,
	}))

	metricsMiddleware := middleware.NewMetricsMiddleware()
	router.Use(metricsMiddleware.CollectMetrics())

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize Redis response cache (nil client disables it)
	redisClient := cache.NewRedisClient(cfg, log)
	defer redisClient.Close()
	cacheMiddleware := middleware.NewCacheMiddleware(redisClient, log, cfg.Redis.TTL)

	// Initialize repositories
	calendarStore := filestore.New[calendar.EventMap](cfg.CalendarPath(), log)
	principlesStore := filestore.New[[]principles.Principle](cfg.PrinciplesPath(), log)
	calendarRepo := calendar.NewRepository(calendarStore)
	principlesRepo := principles.NewRepository(principlesStore)

	// Initialize reminder scheduler
	reminders := scheduler.New(scheduler.NewLogNotifier(log), log)
	defer reminders.Stop()

	// Initialize services
	calendarService := calendar.NewService(calendarRepo, reminders, log)
	principlesService := principles.NewService(principlesRepo, log)

	ctx := context.Background()
	if err := calendarService.Load(ctx); err != nil {
		log.Fatal("Failed to load calendar events", zap.Error(err))
	}
	if err := principlesService.Load(ctx); err != nil {
		log.Fatal("Failed to load principles", zap.Error(err))
	}

	if cfg.Reminders.Enabled {
		if err := reminders.Start(cfg.Reminders.RescanCron, func() calendar.EventMap {
			return calendarService.Events(context.Background())
		}); err != nil {
			log.Fatal("Failed to start reminder rescan", zap.Error(err))
		}
	}

	// Initialize handlers
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	principlesHandler := handlers.NewPrinciplesHandler(principlesService)
	authHandler := handlers.NewAuthHandler(cfg.Auth, log)

	// Set up routes
	routes.NewCalendarRoutes(calendarHandler, cacheMiddleware).RegisterRoutes(router)
	log.Info("Registered calendar routes at /api/calendar-events")

	routes.NewPrinciplesRoutes(principlesHandler, cacheMiddleware).RegisterRoutes(router)
	log.Info("Registered principles routes at /api/principles")

	routes.NewAuthRoutes(authHandler).RegisterRoutes(router)
	log.Info("Registered auth routes at /api/login and /api/logout")

	routes.SetupHealthRoutes(router)
	log.Info("Registered health check route at /health")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Portal backend starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
