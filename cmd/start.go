package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitinventory/core/catalog"
	"kitinventory/core/config"
	"kitinventory/core/database"
	"kitinventory/core/loader"
	"kitinventory/core/logger"
	"kitinventory/core/middleware/auth"
	"kitinventory/core/middleware/rayid"
	"kitinventory/core/storage"

	"kitinventory/feature/catalogcache"
	"kitinventory/feature/inventory"
	"kitinventory/feature/inventory/eventlog"
	"kitinventory/feature/thumbnails"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "kitinventory/docs/swagger"
)

// @title Kit Inventory API
// @version 1.0
// @description API for tracking construction kit acquisitions.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
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
		logg = logg.With(zap.String("system", cfg.Inventory.System))

		// 3. Catalog client and fetcher
		api := catalog.NewClient(cfg.Catalog)
		fetcher := inventory.NewFetcher(api, cfg.Catalog, logg)

		// 4. Optional parts-list cache
		var partsFetcher inventory.PartsFetcher = fetcher
		if cfg.Cache.Enabled {
			if db, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed, cache disabled", zap.Error(err))
			} else {
				cacheSvc := catalogcache.NewService(db, time.Duration(cfg.Cache.TTLHours)*time.Hour, logg)
				if err := cacheSvc.Migrate(); err != nil {
					logg.Warn("Cache migration failed, cache disabled", zap.Error(err))
				} else {
					partsFetcher = catalogcache.Wrap(fetcher, cacheSvc, logg)
					logg.Info("Parts-list cache enabled")
				}
			}
		}

		// 5. Optional thumbnail mirror
		var store storage.Client
		if cfg.Thumbnail.Enabled {
			s, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Storage client creation failed, thumbnails disabled", zap.Error(err))
			} else {
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
				svc := thumbnails.NewService(s, cfg.Storage.Bucket, cfg.Thumbnail.ImageHost, logg)
				if err := svc.EnsureBucket(ctx); err != nil {
					logg.Warn("Thumbnail bucket check failed, thumbnails disabled", zap.Error(err))
				} else {
					store = s
				}
				cancel()
			}
		}

		// 6. Domain wiring: event log, service, features
		invSvc := inventory.NewService(eventlog.New(), fetcher, cfg.Inventory.System, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(inventory.NewFeature(invSvc, partsFetcher, logg))
		mgr.Register(thumbnails.NewFeature(store, cfg.Storage.Bucket, cfg.Thumbnail.ImageHost, logg))

		// Middleware: ray id first so everything downstream is traceable
		app.Use(rayid.New())

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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
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
