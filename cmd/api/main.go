package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/analytics"
	"github.com/Azekhiel/Bekal-bangsa/internal/auth"
	"github.com/Azekhiel/Bekal-bangsa/internal/db"
	"github.com/Azekhiel/Bekal-bangsa/internal/iot"
	"github.com/Azekhiel/Bekal-bangsa/internal/kitchen"
	"github.com/Azekhiel/Bekal-bangsa/internal/middleware"
	"github.com/Azekhiel/Bekal-bangsa/internal/notify"
	"github.com/Azekhiel/Bekal-bangsa/internal/order"
	"github.com/Azekhiel/Bekal-bangsa/internal/storage"
	"github.com/Azekhiel/Bekal-bangsa/internal/supply"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"KOLOSAL_API_KEY",
		"KOLOSAL_BASE_URL",
		"KOLOSAL_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8501"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AI ─────────────────────────
	aiClient := ai.NewKolosalClient(
		os.Getenv("KOLOSAL_API_KEY"),
		os.Getenv("KOLOSAL_BASE_URL"),
		os.Getenv("KOLOSAL_MODEL"),
	)

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	supplyRepo := supply.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	kitchenRepo := kitchen.NewPostgresRepository(pgDB)
	iotRepo := iot.NewPostgresRepository(pgDB)
	analyticsRepo := analytics.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	supplyService := supply.NewService(supplyRepo, aiClient, r2Client)
	orderService := order.NewService(orderRepo)
	kitchenService := kitchen.NewService(kitchenRepo, supplyRepo, aiClient)
	notifyService := notify.NewService(supplyRepo, aiClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	supplyHandler := supply.NewHandler(supplyService)
	orderHandler := order.NewHandler(orderService)
	kitchenHandler := kitchen.NewHandler(kitchenService)
	notifyHandler := notify.NewHandler(notifyService)
	iotHandler := iot.NewHandler(iotRepo)
	analyticsHandler := analytics.NewHandler(analyticsRepo)

	// ───────────────────────── SUPPLY ROUTES ─────────────────────────
	r.POST("/api/analyze", supplyHandler.Analyze)
	r.POST("/api/upload", supplyHandler.Upload)
	r.POST("/api/supplies", supplyHandler.CreateSupplies)
	r.GET("/api/supplies", supplyHandler.ListSupplies)
	r.GET("/api/suppliers/search", supplyHandler.SearchSuppliers)

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/api/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.ListMine)
		orders.GET("/umkm", orderHandler.ListIncoming)
		orders.PUT("/:id", orderHandler.UpdateStatus)
	}

	// ───────────────────────── KITCHEN ROUTES ─────────────────────────
	r.POST("/api/recommend-menu", kitchenHandler.RecommendMenu)

	kitchenGroup := r.Group("/api/kitchen")
	{
		kitchenGroup.POST("/cook", kitchenHandler.Cook)
		kitchenGroup.GET("/meals", kitchenHandler.ListMeals)
		kitchenGroup.POST("/meals/:id/serve", kitchenHandler.Serve)
		kitchenGroup.POST("/scan-food", kitchenHandler.ScanFood)
		kitchenGroup.POST("/chat", kitchenHandler.Chat)
	}

	// ───────────────────────── NOTIFICATIONS ─────────────────────────
	r.POST("/api/notifications/trigger", notifyHandler.Trigger)

	// ───────────────────────── IOT ─────────────────────────
	r.POST("/api/iot/log", iotHandler.Log)
	r.GET("/api/iot/logs", iotHandler.List)

	// ───────────────────────── ANALYTICS (JWT) ─────────────────────────
	analyticsGroup := r.Group("/api/analytics")
	analyticsGroup.Use(middleware.AuthMiddleware())
	{
		analyticsGroup.GET("/kitchen", analyticsHandler.Kitchen)
		analyticsGroup.GET("/vendor",
			middleware.RequireRole("VENDOR", "ADMIN"),
			analyticsHandler.Vendor)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
