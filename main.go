package main

import (
	"database/sql"
	"io/fs"
	"log"
	"net/http"
	"time"

	"expense-tracker-api/config"
	"expense-tracker-api/handlers"
	"expense-tracker-api/middleware"
	"expense-tracker-api/routes"
	"expense-tracker-api/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	router := setupRouter(db, cfg)

	log.Printf("🚀 Expense Tracker API server running on port %s", cfg.Port)
	log.Printf("📊 Environment: %s", cfg.Environment)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// setupRouter wires middleware, the API route groups, health probes and the
// embedded frontend onto a fresh engine.
func setupRouter(db *sql.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(cfg.IsProduction()))

	corsConfig := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("📨 %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	})

	health := handlers.NewHealthHandler(db, cfg)
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(100, time.Minute))
	{
		routes.SetupExpenseRoutes(api, db)
		routes.SetupCategoryRoutes(api, db)
		routes.SetupBudgetRoutes(api, db)
		routes.SetupStatsRoutes(api, db)
	}

	registerFrontend(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

// registerFrontend serves the embedded single-page app: index at / and the
// rest of the bundle under /static.
func registerFrontend(router *gin.Engine) {
	index, err := web.StaticFS.ReadFile("static/index.html")
	if err != nil {
		log.Printf("❌ Frontend assets unavailable: %v", err)
		return
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})

	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		log.Printf("❌ Frontend assets unavailable: %v", err)
		return
	}
	router.StaticFS("/static", http.FS(sub))
}
