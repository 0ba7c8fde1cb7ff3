package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"console-server/core/config"
	"console-server/core/gateway"
	"console-server/core/loader"
	"console-server/core/logger"
	"console-server/core/middleware/rayid"
	"console-server/core/server"
	"console-server/feature/console"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	startToken    string
	startEndpoint string
	startHost     string
	startPort     string
	startAssets   string
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the console server",
	Long:  `Starts the HTTP server that hosts the gateway console bundle.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration (env tier + defaults)
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// Flags beat the environment.
		if startHost != "" {
			cfg.Server.Host = startHost
		}
		if startPort != "" {
			cfg.Server.Port = startPort
		}
		if startAssets != "" {
			cfg.Server.Assets = startAssets
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Resolve the gateway connection once, before the server
		// accepts anything.
		resolved := gateway.Resolve(cfg.Gateway, gateway.Overrides{
			Endpoint: startEndpoint,
			Token:    startToken,
		})
		if resolved.Token == "" {
			logg.Warn("No auth token found; the console will connect unauthenticated")
		} else {
			logg.Info("Auth token resolved", zap.String("source", resolved.TokenSource))
		}
		if _, ok := cfg.Server.ResolvePort(); !ok {
			logg.Warn("Port is not a valid number, using default",
				zap.String("configured", cfg.Server.Port),
				zap.Int("default", server.DefaultPort))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			UnescapePath:          true, // Classify on the decoded path
		})

		// Middleware: RayID first so everything downstream can trace.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
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

		// 5. Load Features
		mgr := loader.NewManager()
		mgr.Register(console.NewFeature(cfg.Server.Assets, resolved, logg))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		addr := cfg.Server.ListenAddr()
		go func() {
			logg.Info("Starting console server",
				zap.String("addr", addr),
				zap.String("gateway", resolved.Endpoint),
				zap.String("assets", cfg.Server.Assets),
			)
			for _, url := range listenURLs(cfg.Server) {
				logg.Info("Console available", zap.String("url", url))
			}
			if err := app.Listen(addr); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	startCmd.Flags().StringVar(&startToken, "token", "", "Auth token override (beats GATEWAY_TOKEN and credential files)")
	startCmd.Flags().StringVar(&startEndpoint, "endpoint", "", "Gateway endpoint URL override (beats GATEWAY_ENDPOINT)")
	startCmd.Flags().StringVar(&startHost, "host", "", "Bind host override (beats SERVER_HOST)")
	startCmd.Flags().StringVar(&startPort, "port", "", "Bind port override (beats SERVER_PORT)")
	startCmd.Flags().StringVar(&startAssets, "assets", "", "Asset bundle directory override")
	RootCmd.AddCommand(startCmd)
}
