package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelback/internal/config"
	"hotelback/internal/database"
	"hotelback/internal/middleware"
	"hotelback/internal/modules/analytics"
	"hotelback/internal/modules/booking"
	"hotelback/internal/modules/catalog"
	"hotelback/internal/modules/export"
	"hotelback/internal/modules/invoice"
	"hotelback/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	stayRepo := repository.NewStayRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	saleRepo := repository.NewServiceSaleRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	analyticsService := analytics.NewService(stayRepo, bookingRepo, saleRepo, guestRepo, catalogRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	invoiceService := invoice.NewService(stayRepo, saleRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	exportService := export.NewService(analyticsService, invoiceService)
	exportHandler := export.NewHandler(exportService, cfg.DefaultLanguage)

	bookingService := booking.NewService(bookingRepo, catalogRepo)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(catalogRepo, guestRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		analyticsHandler.RegisterRoutes(v1)
		invoiceHandler.RegisterRoutes(v1)
		exportHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
