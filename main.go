package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/config"
	orderControllers "github.com/charandeep-reddy/food-login/controllers/order"
	"github.com/charandeep-reddy/food-login/logging"
	"github.com/charandeep-reddy/food-login/middleware"
	"github.com/charandeep-reddy/food-login/models"
	"github.com/charandeep-reddy/food-login/payment"
	"github.com/charandeep-reddy/food-login/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Init("food-api", cfg.LogFile)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("DB connection failed", "err", err)
		log.Fatalf("DB connection failed: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
		&models.Item{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	gateway := payment.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayAPIURL)
	hub := orderControllers.NewHub()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r, routes.Deps{
		DB:            db,
		Gateway:       gateway,
		Hub:           hub,
		JWTSecret:     cfg.JWTSecret,
		PaymentSecret: cfg.RazorpayKeySecret,
	})

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
