package cmd

import (
	"fmt"
	"time"

	"orth-check/core/config"
	"orth-check/core/loader"
	"orth-check/core/logger"
	"orth-check/core/middleware/auth"
	"orth-check/core/middleware/rayid"
	"orth-check/feature/orthology"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "orth-check/docs/swagger"
)

const shutdownTimeout = 10 * time.Second

// @title Orthology Check API
// @version 1.0
// @description Consistency checks for sequences of orthology mapping files.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the orthology check server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		svc, metrics, err := newService(ctx, cfg, logg)
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager()
		mgr.Register(orthology.NewFeature(svc))

		// RayID first so every log line of a request carries it.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/metrics"},
		}))
		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not configured; API is unprotected")
		}

		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errc := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errc <- app.Listen(cfg.Server.Addr())
		}()

		select {
		case err := <-errc:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
