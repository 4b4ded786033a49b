package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/metascope/metascope-cli/internal/dataset"
	"github.com/metascope/metascope-cli/internal/logger"
	"github.com/metascope/metascope-cli/internal/server"
)

var (
	srvAddr  string
	srvInput string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the exploration API over a resident dataset",
	Long: `Serve loads the dataset once (preferring the sampled artifact when present),
keeps the normalized record set in memory, and answers filter, aggregation,
word-frequency, and export requests against it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(srvAddr, srvInput)
	},
}

func runServe(addr, input string) error {
	level := ""
	if cfg != nil {
		level = cfg.LogLevel
	}
	if debug {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	path := input
	if path == "" {
		path, err = dataset.ResolvePath(cfg.SamplePath, cfg.DataPath)
		if err != nil {
			return err
		}
	}
	set, err := dataset.Load(path)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", set.Len()),
		zap.Int("columns", len(set.Columns)),
	)

	if addr == "" {
		addr = cfg.ServeAddr
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(set, cfg, log).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&srvAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&srvInput, "input", "", "dataset path (default: resolve sample, then full dataset)")
	rootCmd.AddCommand(serveCmd)
}
