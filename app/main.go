package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lenormf/news2rss/app/api"
	"github.com/lenormf/news2rss/app/cfg"
	"github.com/lenormf/news2rss/app/newsapi"
	"github.com/lenormf/news2rss/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg)

	if appCfg.APIKey == "" {
		slog.Error("No API key set")
		os.Exit(1)
	}

	slog.Info("Starting news2rss server...", "version", appCfg.Version)

	// The source directory must be available before serving; a provider
	// that is unreachable or rejects the credentials is fatal.
	client := newsapi.NewClient(appCfg.APIKey, appCfg.UserAgent)

	records, err := client.Sources(context.Background())
	if err != nil {
		slog.Error("Unable to fetch list of sources", "error", err)
		os.Exit(1)
	}

	directory := sources.NewDirectory(records)
	slog.Info("Source directory populated", "sources", directory.Len())

	// Initialize HTTP server
	handler := api.NewHandler(client, directory)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(appCfg.Host, appCfg.Port),
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Listening", "host", appCfg.Host, "port", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Server shutdown complete")
}

func setupLogging(appCfg *cfg.Cfg) {
	level := slog.LevelWarn
	if appCfg.Debug {
		level = slog.LevelDebug
	} else if appCfg.Verbose {
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
