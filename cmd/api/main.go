package main

import (
	"log"
	"os"
	"time"

	"github.com/surveyx/surveyx-api/internal/infrastructure/database"
	"github.com/surveyx/surveyx-api/internal/infrastructure/openai"
	"github.com/surveyx/surveyx-api/internal/interfaces/http/middleware"
	"github.com/surveyx/surveyx-api/internal/interfaces/http/routes"
	"github.com/surveyx/surveyx-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is not defined in the environment")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Completion service for analytics generation
	completions := openai.NewClient(openai.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		APIURL: os.Getenv("OPENAI_API_URL"),
		Model:  os.Getenv("OPENAI_MODEL"),
	})

	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second, // analytics generation blocks on the model round trip
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db, completions, routes.Config{
		BaseURL:   utils.GetEnv("APP_BASE_URL", "http://localhost:5173"),
		JWTSecret: jwtSecret,
	})

	// Start server
	port := utils.GetEnv("PORT", "8080")
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
