// Package main runs the wedding planning platform HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vivaha-events/backend/config"
	"github.com/vivaha-events/backend/internal/activity"
	"github.com/vivaha-events/backend/internal/auth"
	"github.com/vivaha-events/backend/internal/cultural"
	"github.com/vivaha-events/backend/internal/engagements"
	"github.com/vivaha-events/backend/internal/events"
	"github.com/vivaha-events/backend/internal/middleware"
	"github.com/vivaha-events/backend/internal/models"
	"github.com/vivaha-events/backend/internal/portfolio"
	"github.com/vivaha-events/backend/internal/vendors"
	"github.com/vivaha-events/backend/internal/venues"
	"github.com/vivaha-events/backend/pkg/database"
	"github.com/vivaha-events/backend/pkg/redis"
	"github.com/vivaha-events/backend/pkg/response"
	"github.com/vivaha-events/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg.Database.DSN(), logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var s3Client *storage.S3
	if cfg.AWS.Region != "" {
		s3Cfg := storage.S3Config{
			Region:               cfg.AWS.Region,
			AccessKeyID:          cfg.AWS.AccessKeyID,
			SecretAccessKey:      cfg.AWS.SecretAccessKey,
			PortfolioBucket:      cfg.AWS.PortfolioBucket,
			PresignExpireMinutes: cfg.AWS.PresignExpireMinutes,
		}
		s3Client, err = storage.NewS3(ctx, s3Cfg, logger)
		if err != nil {
			logger.Warn("s3 disabled", zap.Error(err))
		}
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	// Auth, roles and session resolution
	authRepo := auth.NewRepository(pool)
	roleStore := auth.NewRoleStore(pool, rdb.Client, logger)
	sessionResolver := auth.NewResolver(jwtService, authRepo, roleStore)
	authHandler := auth.NewHandler(authRepo, roleStore, sessionResolver, jwtService, logger)

	// Events
	eventRepo := events.NewRepository(pool)
	eventHandler := events.NewHandler(eventRepo)

	// Catalog
	vendorRepo := vendors.NewRepository(pool)
	vendorHandler := vendors.NewHandler(vendorRepo)
	venueRepo := venues.NewRepository(pool)
	venueHandler := venues.NewHandler(venueRepo)

	// Engagements (inquiries and bookings)
	inquiryRepo := engagements.NewInquiryRepository(pool)
	bookingRepo := engagements.NewBookingRepository(pool)
	engagementSvc := engagements.NewService(eventRepo, vendorRepo, venueRepo, inquiryRepo, bookingRepo, logger)
	engagementHandler := engagements.NewHandler(engagementSvc, vendorRepo, venueRepo)

	// Dashboard feed and stats
	activityHandler := activity.NewHandler(eventRepo, inquiryRepo, bookingRepo)

	// Cultural catalog
	culturalRepo := cultural.NewRepository(pool)
	culturalHandler := cultural.NewHandler(culturalRepo)

	// Portfolio images (S3-backed; 503 when S3 is not configured)
	portfolioRepo := portfolio.NewRepository(pool)
	portfolioHandler := portfolio.NewHandler(portfolioRepo, s3Client, vendorRepo, venueRepo)

	jwtValidate := func(token string) (uuid.UUID, string, error) {
		claims, err := jwtService.Validate(token)
		if err != nil {
			return uuid.Nil, "", err
		}
		return claims.UserID, claims.Email, nil
	}
	roleLookup := middleware.RoleLookup(roleStore.Get)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	// Auth (public)
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	router.GET("/auth/session", authHandler.Session)

	// Protected API (JWT required)
	api := router.Group("")
	api.Use(middleware.JWT(jwtValidate))
	{
		api.PUT("/auth/role", authHandler.SwitchRole)
		api.GET("/access/evaluate", authHandler.EvaluateArea)

		// Dashboard (couples and planners)
		dashboard := api.Group("/dashboard", middleware.RequireArea(roleLookup, "/dashboard"))
		{
			dashboard.GET("/stats", activityHandler.Stats)
			dashboard.GET("/activity", activityHandler.Feed)
		}

		// Events
		ev := api.Group("/events", middleware.RequireArea(roleLookup, "/events"))
		{
			ev.GET("", eventHandler.List)
			ev.POST("", eventHandler.Create)
			ev.GET("/:id", eventHandler.GetByID)
			ev.PATCH("/:id", eventHandler.Update)
		}

		// Vendor catalog and inquiries
		vnd := api.Group("/vendors", middleware.RequireArea(roleLookup, "/vendors"))
		{
			vnd.GET("", vendorHandler.List)
			vnd.POST("/:id/inquiries", engagementHandler.CreateInquiry)
			vnd.GET("/:id/portfolio", portfolioHandler.ListVendorImages)
		}

		// Venue catalog and booking requests
		ven := api.Group("/venues", middleware.RequireArea(roleLookup, "/venues"))
		{
			ven.GET("", venueHandler.List)
			ven.POST("/:id/bookings", engagementHandler.CreateBooking)
			ven.GET("/:id/portfolio", portfolioHandler.ListVenueImages)
		}

		// Principal engagement lifecycle
		budget := api.Group("", middleware.RequireArea(roleLookup, "/budget"))
		{
			budget.GET("/engagements", engagementHandler.List)
			budget.POST("/bookings/:id/cancel", engagementHandler.CancelBooking)
		}

		// Cultural catalog
		api.GET("/cultural", middleware.RequireArea(roleLookup, "/cultural"), culturalHandler.List)

		// Vendor dashboard
		vd := api.Group("/vendor-dashboard", middleware.RequireArea(roleLookup, "/vendor-dashboard"))
		{
			vd.POST("/profile", vendorHandler.CreateProfile)
			vd.GET("/profile", vendorHandler.MyProfile)
			vd.GET("/inquiries", engagementHandler.VendorInbox)
			vd.POST("/portfolio", portfolioHandler.UploadVendorImage)
			vd.DELETE("/portfolio/:id", portfolioHandler.DeleteVendorImage)
		}
		api.PATCH("/inquiries/:id", middleware.RequireArea(roleLookup, "/vendor-dashboard"), engagementHandler.DecideInquiry)

		// Venue manager
		vm := api.Group("/venue-manager", middleware.RequireArea(roleLookup, "/venue-manager"))
		{
			vm.POST("/venues", venueHandler.CreateProfile)
			vm.GET("/venues/mine", venueHandler.MyProfile)
			vm.GET("/bookings", engagementHandler.VenueInbox)
			vm.POST("/portfolio", portfolioHandler.UploadVenueImage)
			vm.DELETE("/portfolio/:id", portfolioHandler.DeleteVenueImage)
		}
		api.PATCH("/bookings/:id", middleware.RequireArea(roleLookup, "/venue-manager"), engagementHandler.DecideBooking)

		// Admin
		admin := api.Group("/admin", middleware.RequireArea(roleLookup, "/admin"))
		{
			admin.GET("/users", middleware.RequireRole(models.RoleAdmin), authHandler.List)
			admin.GET("/vendors", vendorHandler.ListForAdmin)
			admin.PATCH("/vendors/:id/approval", vendorHandler.SetApproval)
			admin.GET("/venues", venueHandler.ListForAdmin)
			admin.PATCH("/venues/:id/approval", venueHandler.SetApproval)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
