package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"roster-importer/core/config"
	"roster-importer/core/database"
	"roster-importer/core/loader"
	"roster-importer/core/logger"
	"roster-importer/core/mailer"
	"roster-importer/core/middleware/auth"
	"roster-importer/core/middleware/rayid"
	"roster-importer/core/storage"

	"roster-importer/feature/calendar"
	"roster-importer/feature/importer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roster-importer/docs/swagger"
)

// @title Roster Importer API
// @version 1.0
// @description API for importing duty rosters into the calendar store.
// @host localhost:8080
// @BasePath /api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roster importer server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to the calendar database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Calendar database connection failed", zap.Error(err))
		}
		logg.Info("Connected to calendar database", zap.String("database", cfg.Database.Name))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage (Optional, archives imported documents)
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional document archive unavailable", zap.Error(err))
		} else {
			store = client
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		eventStore := calendar.NewStore(db)
		mgr.Register(calendar.NewFeature(db, logg))
		mgr.Register(importer.NewFeature(eventStore, store, cfg.Storage.Bucket, mailer.New(cfg.Mailer), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		api := app.Group("/api", auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
