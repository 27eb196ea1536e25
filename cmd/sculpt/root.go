package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"sculpt-editor/action"
	"sculpt-editor/config"
	"sculpt-editor/internal/logging"
	"sculpt-editor/internal/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "sculpt",
	Short: "Sculpt is a mesh sculpting editor with undo and redo",
	Long: `Sculpt opens an icosphere in a window and lets you carve, drag and smooth it.
Every stroke and edge flip can be undone and redone.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
}

// env is what every command needs before it starts.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	hooks  action.Hooks
}

func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	levelName := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		levelName, _ = cmd.Flags().GetString("log-level")
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	hooks := logging.HistoryHooks(logger)
	addr, _ := cmd.Flags().GetString("metrics-addr")
	if addr != "" {
		m := metrics.NewHistory()
		registry := prometheus.NewRegistry()
		if err := m.Register(registry); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		serveMetrics(addr, registry, logger)
		hooks = action.JoinHooks(hooks, m.Hooks())
	}

	return &env{cfg: cfg, logger: logger, hooks: hooks}, nil
}

func serveMetrics(addr string, registry *prometheus.Registry, logger *slog.Logger) {
	srv := &http.Server{
		Addr:    addr,
		Handler: metrics.Handler(registry),
	}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
}
