package main

import (
	"log"
	"os"
	"strconv"

	"typingmaster/config"
	"typingmaster/controllers"
	"typingmaster/db"
	"typingmaster/middlewares"
	"typingmaster/routes"
	"typingmaster/services"
	"typingmaster/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	controllers.SetConfig(cfg)
	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := services.InitBadgeRenderer(cfg.Badges.Dir); err != nil {
		log.Fatalf("Failed to initialize badge renderer: %v", err)
	}

	// Speech is optional: tests, stats and badges all work without it
	if err := services.InitTTSService(cfg); err != nil {
		log.Printf("Text-to-speech disabled: %v", err)
	}

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/googleLogin", routes.GoogleLoginRouteHandler)
	router.GET("/typing-text", routes.GetTypingTextRouteHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/submit-result", routes.SubmitResultRouteHandler)
		auth.GET("/get-typing-stats", routes.GetTypingStatsRouteHandler)
		auth.GET("/dashboard", routes.GetDashboardRouteHandler)
		auth.GET("/user/:id", routes.GetUserProfileRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.POST("/generate-speech", routes.GenerateSpeechRouteHandler)
	}

	return router
}
