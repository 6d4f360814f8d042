package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luiisca/cal.com/internal/config"
	"github.com/luiisca/cal.com/internal/database"
	"github.com/luiisca/cal.com/internal/logging"
	"github.com/luiisca/cal.com/internal/middleware"
	"github.com/luiisca/cal.com/internal/modules/auth"
	"github.com/luiisca/cal.com/internal/modules/avatar"
	"github.com/luiisca/cal.com/internal/modules/cancel"
	"github.com/luiisca/cal.com/internal/modules/eventtype"
	"github.com/luiisca/cal.com/internal/modules/onboarding"
	jwtsvc "github.com/luiisca/cal.com/internal/pkg/jwt"
	"github.com/luiisca/cal.com/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Environment)
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	avatarRepo := repository.NewAvatarRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	cancelService := cancel.NewService(bookingRepo, cfg.DisplayTimeZone)
	cancelHandler := cancel.NewHandler(cancelService)

	onboardingService := onboarding.NewService(userRepo, eventTypeRepo, logger)
	onboardingHandler := onboarding.NewHandler(onboardingService)

	eventTypeService := eventtype.NewService(eventTypeRepo)
	eventTypeHandler := eventtype.NewHandler(eventTypeService)

	avatarService := avatar.NewService(avatarRepo, userRepo, cfg.UploadsDir, avatar.StaticURLBase)
	avatarHandler := avatar.NewHandler(avatarService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	r.Static(avatar.StaticURLBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)

		// the cancellation page serves anonymous visitors too
		open := v1.Group("/")
		open.Use(middleware.OptionalAuth(j))
		{
			cancelHandler.RegisterRoutes(open)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			onboardingHandler.RegisterRoutes(protected)
			eventTypeHandler.RegisterRoutes(protected)
			avatarHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
