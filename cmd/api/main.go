package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"azurea/internal/config"
	"azurea/internal/database"
	"azurea/internal/domain"
	"azurea/internal/middleware"
	"azurea/internal/modules/availability"
	"azurea/internal/modules/booking"
	"azurea/internal/modules/catalog"
	"azurea/internal/modules/notification"
	"azurea/internal/modules/review"
	jwtsvc "azurea/internal/pkg/jwt"
	"azurea/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	bookingRepo := repository.NewBookingRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	clock := domain.SystemClock{}
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	notifier := notification.NewLogNotifier()
	index := availability.NewIndex(bookingRepo, clock)

	bookingService := booking.NewService(bookingRepo, resourceRepo, index, paymentRepo, notifier, clock)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(resourceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo, clock)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		// public browsing and the per-resource calendar
		public := v1.Group("/")
		v1.GET("/rooms/:id/calendar", bookingHandler.RoomCalendar)
		v1.GET("/areas/:id/calendar", bookingHandler.AreaCalendar)
		v1.GET("/rooms/:id/reviews", reviewHandler.RoomReviews)
		v1.GET("/areas/:id/reviews", reviewHandler.AreaReviews)

		guest := v1.Group("/", middleware.JWTAuth(j))
		staff := v1.Group("/admin", middleware.JWTAuth(j), middleware.AdminOnly())

		catalogHandler.RegisterRoutes(public, staff)
		bookingHandler.RegisterRoutes(guest, staff)
		reviewHandler.RegisterRoutes(guest, staff)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
