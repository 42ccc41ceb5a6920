package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"marketplace/internal/config"
	"marketplace/internal/domain/admin"
	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/booking"
	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/message"
	"marketplace/internal/domain/notification"
	"marketplace/internal/domain/payment"
	"marketplace/internal/domain/profile"
	"marketplace/internal/domain/review"
	"marketplace/internal/domain/subscription"
	"marketplace/internal/middleware"
	jwtsvc "marketplace/internal/pkg/jwt"
	"marketplace/internal/pkg/response"
)

// Deps are the process-level resources the application is built from.
// Events may be nil when no message broker is configured.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Log    zerolog.Logger
	Events notification.EventPublisher
}

// App holds the HTTP router and the services main needs after startup.
type App struct {
	Router  *gin.Engine
	JWT     *jwtsvc.Service
	Hub     *notification.Hub
	Catalog *catalog.Service
	Cleanup *notification.CleanupService
}

// Models lists every persisted type for AutoMigrate.
func Models() []any {
	return []any{
		&auth.User{},
		&catalog.Category{},
		&catalog.Listing{},
		&subscription.Subscription{},
		&booking.Model{},
		&payment.Payment{},
		&review.Model{},
		&message.Message{},
		&notification.Notification{},
	}
}

func New(d Deps) *App {
	cfg, db, log := d.Config, d.DB, d.Log

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notification.NewHub(log)

	// Repositories
	userRepo := auth.NewUserRepository(db)
	subRepo := subscription.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	bookingRepo := booking.NewBookingRepository(db)
	paymentRepo := payment.NewRepository(db)
	reviewRepo := review.NewReviewRepository(db)
	messageRepo := message.NewRepository(db)
	notifRepo := notification.NewNotificationRepository(db)
	adminRepo := admin.NewAdminRepository(db)

	// Services
	notifService := notification.NewService(notifRepo, hub, d.Events, log)
	subService := subscription.NewService(subRepo, log)
	catalogService := catalog.NewService(catalogRepo, subService, log)
	bookingService := booking.NewService(bookingRepo, catalogService, userRepo, notifService, log)
	paymentService := payment.NewService(paymentRepo, bookingRepo, log)
	reviewService := review.NewService(reviewRepo, bookingRepo, log)
	messageService := message.NewService(messageRepo, bookingRepo, hub, notifService, log)
	profileService := profile.NewService(userRepo, catalogService, reviewRepo, log)
	adminService := admin.NewService(adminRepo, catalogService, bookingRepo, log)

	// Handlers
	authHandler := auth.NewHandler(userRepo, middleware.MustPrincipal)
	subHandler := subscription.NewHandler(subService)
	catalogHandler := catalog.NewHandler(catalogService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentService)
	reviewHandler := review.NewHandler(reviewService)
	messageHandler := message.NewHandler(messageService)
	notifHandler := notification.NewHandler(notifService)
	wsHandler := notification.NewWSHandler(hub, cfg.WSAllowedOrigins)
	profileHandler := profile.NewHandler(profileService)
	adminHandler := admin.NewHandler(adminService)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.ErrorLogger(log),
		cors.New(corsConfig(cfg.CORSAllowedOrigins)),
	)

	r.GET("/health", healthHandler(db))

	clientOnly := middleware.RequireRole(auth.RoleClient)

	v1 := r.Group("/api/v1", middleware.SanitizeJSON())
	{
		// public
		catalogHandler.RegisterRoutes(v1)
		subscription.RegisterPublicRoutes(v1, subHandler)
		reviewHandler.RegisterRoutes(v1, nil, nil)
		profileHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected, clientOnly)
			paymentHandler.RegisterProtectedRoutes(protected, clientOnly)
			reviewHandler.RegisterRoutes(nil, protected, clientOnly)
			messageHandler.RegisterRoutes(protected)
			notification.RegisterRoutes(protected, notifHandler, wsHandler)
		}

		provider := v1.Group("")
		provider.Use(middleware.JWTAuth(j), middleware.RequireRole(auth.RoleProvider))
		{
			subscription.RegisterProviderRoutes(provider, subHandler)
			catalogHandler.RegisterProviderRoutes(provider, subscription.RequireActiveSubscription(subService))
		}

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	return &App{
		Router:  r,
		JWT:     j,
		Hub:     hub,
		Catalog: catalogService,
		Cleanup: notification.NewCleanupService(notifRepo, log),
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
