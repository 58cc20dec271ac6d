package main

import (
	"log"
	"os"

	"github.com/3zshihri-ux/warehouse-management-system1/cmd"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/config"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/core/container"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/core/logger"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/core/routes"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/database"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/middleware"
	"github.com/3zshihri-ux/warehouse-management-system1/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Subcommands (migrate) run instead of the server
	if len(os.Args) > 1 {
		cmd.Execute()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, zapLogger); err != nil {
		log.Fatalf("Error: %v", err)
	}

	appContainer := container.NewAppContainer(db, cfg, zapLogger)

	// Create the admin account on first run
	if err := users.SeedAdmin(appContainer.UserRepository, cfg, zapLogger); err != nil {
		log.Fatalf("Error: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	routes.RegisterUtilityRoutes(router)
	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
