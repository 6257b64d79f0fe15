// Command server runs the sports gateway.
//
// Usage:
//
//	sports-gateway serve
//	sports-gateway fetch games --league NFL
//	sports-gateway fetch highlights --league NBA --team LAL --count 5
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sports-gateway/internal/config"
	"sports-gateway/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sports-gateway",
		Short:        "Recent games and highlights for NFL, NBA, MLB and NHL",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd())
	root.AddCommand(fetchCmd())
	return root
}

func newLogger(cfg config.Config, out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  out,
	})
}
