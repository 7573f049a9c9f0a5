package cli

import (
	"log/slog"
	"os"

	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/pipeline"
	"github.com/ppiankov/veridoc/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the verification pipeline as an HTTP endpoint",
	Long: `Serve starts an HTTP server with a single verification endpoint:

  POST /api/verify   {"doc_url": "..."}  ->  verification report (JSON)
  GET  /healthz      liveness check

Each request runs an isolated verification with its own fetch caches.

Example:
  veridoc serve
  veridoc serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Addr = serveAddr
	if extra := viper.GetStringSlice("policy.extra_blocked_domains"); len(extra) > 0 {
		cfg.Policy.ExtraBlockedDomains = extra
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	p := pipeline.New(cfg)
	s := server.New(p, cfg.Server, logger)

	return s.Run()
}
