package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/database"
	"catalog/internal/server"
	"catalog/pkg/rabbitmq"

	"github.com/spf13/cobra"
)

var autoMigrate bool

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the catalog HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		defer a.Close()

		if autoMigrate {
			if err := database.Migrate(a.db); err != nil {
				return err
			}
		}

		opts := server.Options{
			AuthService:    a.auth,
			ProductService: a.products,
			FileService:    a.files,
			LoginLimiter:   a.limiter,
			RequestLog:     true,
			Checks:         map[string]func() string{},
		}
		if a.cfg.SeedEnabled {
			opts.SeedService = a.seed
		}

		if a.mq != nil {
			opts.Checks["rabbitmq"] = func() string { return "connected" }
			// Catalog events are logged by an in-process consumer.
			if err := a.mq.ConsumeCatalogEvents(rabbitmq.HandleCatalogMessage); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}

		app := server.New(opts)

		// Graceful shutdown handling
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			log.Printf("Starting server on port %s", a.cfg.AppPort)
			if err := app.Listen(a.cfg.AppPort); err != nil {
				log.Printf("Server stopped: %v", err)
				quit <- syscall.SIGTERM
			}
		}()

		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during Fiber shutdown: %v", err)
		}
		log.Println("Server gracefully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "run database migrations before serving")
}
