package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/catalog"
	"github.com/brasacombo/storefront-app/config"
	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/router"
	"github.com/brasacombo/storefront-app/utils"
)

func init() {
	// Load .env before anything else reads the environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := catalog.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed catalog: %v", err)
	}
	utils.InfoLogger.Println("Catalog seeded.")

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Combo{},
		&models.Drink{},
		&models.Session{},
		&models.CartRecord{},
		&models.OrderSnapshot{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
