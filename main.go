package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/cart"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/configs"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/events"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/repository"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/routes"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/storage"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/utils"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/ws"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal(err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatal(err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// Object storage; nil keeps uploads disabled when S3 is not set up.
	var store *storage.Storage
	if cfg.S3Bucket != "" {
		s, err := storage.New(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.S3PublicBase)
		if err != nil {
			log.Printf("s3 disabled: %v", err)
		} else {
			store = s
		}
	}

	// Event bus; a noop broker when RabbitMQ is not configured.
	var broker events.Broker = events.NoopBroker{}
	if cfg.RabbitURL != "" {
		b, err := events.NewRabbitMQBroker(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq disabled: %v", err)
		} else {
			broker = b
			defer b.Close()
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Session carts live in memory; the sweeper drops idle sessions.
	carts := cart.NewStore(cfg.CartTTL)
	stopSweep := make(chan struct{})
	carts.StartSweeper(cfg.CartTTL/4, stopSweep)
	defer close(stopSweep)

	mail := utils.MailConfig{
		Addr:     cfg.SMTPAddr,
		Host:     cfg.SMTPHost,
		From:     cfg.FromEmail,
		Password: cfg.FromPassword,
	}

	// Services
	authSvc := services.NewAuthService(db, userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.PublicBaseURL, mail)
	restSvc := services.NewRestaurantService(db, restRepo)
	staffSvc := services.NewStaffService(db, staffRepo, userRepo, settingsRepo)
	menuSvc := services.NewMenuService(db, menuRepo)
	cartSvc := services.NewCartService(carts, menuRepo)
	tableSvc := services.NewTableService(db, tableRepo, restRepo, cfg.PublicBaseURL)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, restSvc, cartSvc, broker)
	reportSvc := services.NewReportService(reportRepo)
	adminSvc := services.NewAdminService(userRepo, restRepo, settingsRepo)

	hub := ws.NewOrderHub(orderSvc, restSvc)
	orderSvc.SetNotifier(hub)
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, &routes.Deps{
		Cfg:     cfg,
		DB:      db,
		Storage: store,

		Auth:    authSvc,
		Rest:    restSvc,
		Staff:   staffSvc,
		Menu:    menuSvc,
		Carts:   cartSvc,
		Tables:  tableSvc,
		Orders:  orderSvc,
		Reports: reportSvc,
		Admin:   adminSvc,

		Hub: hub,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
