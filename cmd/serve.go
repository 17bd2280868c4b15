package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/msalah0e/archmap/internal/ctxlog"
	"github.com/msalah0e/archmap/internal/server"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		logLevel    string
		logFormat   string
		maxSessions int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the live interactive diagram over HTTP",
		Long: `Run a local HTTP server. The page at / keeps its interaction state in a
server-side session and posts every click, toggle, and drag as an event.

  archmap serve                      # http://127.0.0.1:8420/
  archmap serve --addr :9000 --log-level debug

API:
  GET    /api/diagram
  POST   /api/sessions
  GET    /api/sessions/{id}
  POST   /api/sessions/{id}/events   {"event": "click llm-2"}
  DELETE /api/sessions/{id}
  GET    /healthz
  GET    /metrics`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfig()
			if !cmd.Flags().Changed("addr") {
				addr = c.Serve.Addr
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = c.Serve.LogLevel
			}
			if !cmd.Flags().Changed("log-format") {
				logFormat = c.Serve.LogFormat
			}

			s := mustLoadDiagram()
			logger := ctxlog.New(logLevel, logFormat, os.Stderr)

			srv, err := server.New(s, server.Config{
				Options:     options(),
				Logger:      logger,
				MaxSessions: maxSessions,
			})
			if err != nil {
				ui.Bad.Printf("  Failed to start server: %v\n", err)
				os.Exit(1)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui.Banner("serving")
			ui.Info.Printf("  http://%s/\n", displayAddr(addr))
			ui.Subtle.Println("  Press Ctrl+C to stop")

			if err := srv.ListenAndServe(ctx, addr); err != nil {
				ui.Bad.Printf("  Server error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8420", "Listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", server.DefaultMaxSessions, "Sessions kept in memory before the oldest is evicted")
	return cmd
}

// displayAddr turns ":8420" into "localhost:8420" for printing.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
