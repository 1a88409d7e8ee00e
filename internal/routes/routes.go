package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/cache"
	"github.com/BruksfildServices01/restaurant-booking/internal/config"
	"github.com/BruksfildServices01/restaurant-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/restaurant-booking/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-booking/internal/middleware"
	"github.com/BruksfildServices01/restaurant-booking/internal/storage"
	ucBooking "github.com/BruksfildServices01/restaurant-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	menuCache := cache.New(cfg)

	mediaStorage, err := storage.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to init media storage: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	resolveBookingUC := ucBooking.NewResolveBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.Timezone,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	restaurantHandler := handlers.NewRestaurantHandler(db, auditDispatcher)

	menuHandler := handlers.NewMenuHandler(
		db,
		menuCache,
		mediaStorage,
		auditDispatcher,
	)

	bookingHandler := handlers.NewBookingHandler(
		resolveBookingUC,
		listBookingsUC,
		getBookingUC,
		deleteBookingUC,
		availabilityUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	webHandler := handlers.NewWebHandler(db)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Home)
	r.GET("/about", webHandler.About)
	r.GET("/menu", webHandler.Menu)
	r.GET("/menu/:id", webHandler.MenuItem)
	r.GET("/book", webHandler.Book)
	r.GET("/reservations", webHandler.Reservations)

	if cfg.StorageBackend == "local" || cfg.StorageBackend == "" {
		r.Static("/media", cfg.LocalMediaDir)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)
		api.POST("/auth/verify", authHandler.Verify)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/restaurant", restaurantHandler.Get)
		api.GET("/menus", menuHandler.List)
		api.GET("/menus/:id", menuHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// MENUS (escrita só para superusuário)
			// ------------------------------
			menuWrite := secured.Group("/")
			menuWrite.Use(middleware.SuperuserOrReadOnly())
			{
				menuWrite.POST("/menus", menuHandler.Create)
				menuWrite.PUT("/menus/:id", menuHandler.Update)
				menuWrite.DELETE("/menus/:id", menuHandler.Delete)
				menuWrite.POST("/menus/:id/image", menuHandler.UploadImage)

				menuWrite.PATCH("/restaurant", restaurantHandler.Update)
			}

			// ------------------------------
			// AUDITORIA (só superusuário)
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.SuperuserOnly())
			{
				admin.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/availability", bookingHandler.Availability)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
		}
	}
}
