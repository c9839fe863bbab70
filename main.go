package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrine/cart"
	"vitrine/controllers"
	"vitrine/database"
	"vitrine/logger"
	"vitrine/models"
	"vitrine/repository"
	"vitrine/routes"
	"vitrine/sender"
	"vitrine/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("config error: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg.Postgres); err != nil {
		logger.Log.Fatal("Error connecting to database", zap.Error(err))
	}

	if err := database.DB.AutoMigrate(
		&models.Brand{},
		&models.Parfum{},
		&models.Variant{},
		&models.Order{},
		&models.Admin{},
	); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Log.Fatal("Error connecting to redis", zap.Error(err))
	}

	var mailer sender.Sender
	mailer, err = sender.NewSMTPSender()
	if err != nil {
		logger.Log.Warn("SMTP not configured, invitations will not be delivered", zap.Error(err))
		mailer = noopSender{}
	}

	brandRepo := repository.NewGormBrandRepository(database.DB)
	parfumRepo := repository.NewGormParfumRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	adminRepo := repository.NewGormAdminRepository(database.DB)
	cartStore := repository.NewRedisCartStore(redisClient, cfg.CartTTL)

	catalogSvc := services.NewCatalogService(brandRepo, parfumRepo)
	cartSvc := services.NewCartService(cartStore, cart.NewBus())
	checkoutSvc := services.NewCheckoutService(orderRepo, parfumRepo)
	orderSvc := services.NewOrderService(orderRepo)
	searchSvc := services.NewSearchService(parfumRepo, brandRepo, orderRepo)
	authSvc := services.NewAuthService(adminRepo, mailer, cfg.JWTSecret)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.Register(r, routes.Controllers{
		Catalog:     controllers.NewCatalogController(catalogSvc),
		Search:      controllers.NewSearchController(searchSvc),
		Cart:        controllers.NewCartController(cartSvc),
		Checkout:    controllers.NewCheckoutController(checkoutSvc, cartSvc),
		AdminOrders: controllers.NewAdminOrdersController(orderSvc),
		AdminCat:    controllers.NewAdminCatalogController(catalogSvc),
		AdminAuth:   controllers.NewAdminAuthController(authSvc),
	}, cfg.JWTSecret, routes.RateLimits{
		Vitrine: cfg.VitrineRateLimit,
		Admin:   cfg.AdminRateLimit,
		API:     cfg.APIRateLimit,
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Log.Error("shutdown error", zap.Error(err))
	}
}

// noopSender stands in when SMTP is not configured (local development).
type noopSender struct{}

func (noopSender) SendEmail(ctx context.Context, to, subject, body string) (sender.SendResult, error) {
	logger.Log.Info("email suppressed", zap.String("to", to), zap.String("subject", subject))
	return sender.SendResult{SentAt: time.Now()}, nil
}
