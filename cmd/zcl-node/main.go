// Command zcl-node runs a ZCL node: it serves the configured clusters over
// a serial, MQTT, WebSocket or loopback transport and exposes the HTTP
// control API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/store"
	"zigbee-go-zcl/internal/web"
	"zigbee-go-zcl/internal/zcl"
	"zigbee-go-zcl/internal/zcl/clusters"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

const (
	dialTimeout     = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfgPath := "config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := loadConfig(cfgPath)
	if err == nil {
		err = cfg.validate()
	}
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("config", "path", cfgPath, "err", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("zcl-node failed", "err", err)
		stop()
		os.Exit(1)
	}
	logger.Info("goodbye")
}

// run starts the node and blocks until ctx is cancelled.
func run(ctx context.Context, cfg *Config, logger *slog.Logger) error {
	logger.Info("zcl-node starting", "version", version)

	registry := zcl.NewRegistry(logger)
	if err := clusters.Register(registry); err != nil {
		return fmt.Errorf("register clusters: %w", err)
	}
	if err := clusters.LoadDir(registry, cfg.ClustersDir, logger); err != nil {
		return fmt.Errorf("load cluster definitions: %w", err)
	}
	logger.Info("cluster registry ready", "clusters", len(registry.All()))

	descs, err := cfg.descriptors(registry)
	if err != nil {
		return fmt.Errorf("resolve endpoints: %w", err)
	}

	db, err := store.NewBoltStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	l, err := openLinks(dialCtx, cfg, logger)
	cancel()
	if err != nil {
		return fmt.Errorf("open transport: %w", err)
	}
	defer l.Close()

	catalog := node.NewCatalog(registry)
	n := node.New(l.local, catalog, descs, logger)
	n.SetTimeout(cfg.timeout)

	scripts, scriptOpts, err := initScripts(n, cfg, logger)
	if err != nil {
		return fmt.Errorf("init scripts: %w", err)
	}
	defer scripts.Stop()
	if err := bindEndpoints(n, db, scripts, cfg, logger); err != nil {
		return fmt.Errorf("bind endpoints: %w", err)
	}
	l.local.Start(n)

	if l.peer != nil {
		peer := node.New(l.peer, catalog, peerDescriptors(registry, cfg), logger.With("component", "peer"))
		peer.SetTimeout(cfg.timeout)
		l.peer.Start(peer)
		go func() {
			checkCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			selfCheck(checkCtx, peer, cfg, logger)
		}()
	}

	if cfg.Web.Listen == "" {
		<-ctx.Done()
		logger.Info("shutting down")
		return nil
	}
	return serveWeb(ctx, n, l, cfg, scriptOpts, logger)
}

// serveWeb runs the HTTP control API until ctx is cancelled.
func serveWeb(ctx context.Context, n *node.Node, l *links, cfg *Config, extra []web.ServerOption, logger *slog.Logger) error {
	opts := []web.ServerOption{
		web.WithVersion(version),
		web.WithAPIKey(cfg.Web.APIKey),
		web.WithAllowedOrigins(cfg.Web.AllowedOrigins),
	}
	if l.frames != nil {
		opts = append(opts, web.WithFrameLink(l.frames))
	}
	api := web.NewServer(n, logger, append(opts, extra...)...)
	defer api.Stop()

	srv := &http.Server{
		Addr:        cfg.Web.Listen,
		Handler:     api,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("web server starting", "addr", cfg.Web.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server shutdown", "err", err)
	}
	return nil
}

func newLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
