package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-loader/core/config"
	"asset-loader/core/logger"
	"asset-loader/core/middleware/auth"
	"asset-loader/core/middleware/rayid"
	"asset-loader/core/pool"
	"asset-loader/feature/assets"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the asset loader server",
	Long:  `Starts the HTTP server, the result processing loop and hot reloading.`,
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

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Build the loader and its sources
		workers := pool.New(cfg.Loader.Workers, logg)
		l, err := newLoader(ctx, cfg, workers, logg)
		if err != nil {
			logg.Fatal("Failed to initialize loader", zap.Error(err))
		}
		logg.Info("Loader ready",
			zap.Int("workers", workers.Workers()),
			zap.Strings("sources", l.Sources()),
			zap.Bool("hot_reload", l.HotReload()),
		)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			rl := logger.WithRayID(logg, c)
			rl.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				rl.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		feature := assets.NewFeature(assets.NewService(l, workers, logg))
		if err := feature.Load(app); err != nil {
			logg.Fatal("Failed to load feature", zap.String("feature", feature.Name()), zap.Error(err))
		}

		reloadInterval := time.Duration(cfg.Loader.ReloadIntervalMS) * time.Millisecond
		if reloadInterval <= 0 {
			reloadInterval = time.Second
		}
		done := make(chan struct{})
		go func() {
			feature.Service().Run(ctx, cfg.Server.ProcessInterval(), reloadInterval)
			close(done)
		}()

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		cancel()
		<-done
		if err := workers.Wait(); err != nil {
			logg.Warn("Worker failure during shutdown", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
