package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/phani92/mate-service/internal/server"
	"github.com/phani92/mate-service/internal/storage"
	"github.com/phani92/mate-service/internal/storage/file"
	"github.com/phani92/mate-service/internal/storage/rediskv"
	"github.com/phani92/mate-service/internal/storage/sqlitekv"
	"github.com/phani92/mate-service/internal/store"
	"github.com/phani92/mate-service/pkg/types"
)

const shutdownTimeout = 5 * time.Second

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inventory API",
	Long:  "Load the persisted state and serve the mate-service REST API until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}

		v, err := loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dataDir, err := resolveDataDir(v.GetString(cfgKeyDataDir))
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		cfg := buildConfig(v, dataDir)
		if flagListenAddr != "" {
			cfg.ListenAddr = flagListenAddr
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "listen", "", "HTTP listen address (overrides config)")
}

// serve wires backend, store, and HTTP server together and blocks until
// the context is cancelled or the listener fails.
func serve(ctx context.Context, cfg types.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}
	defer backend.Close()

	st := store.New(backend, cfg.Capacities)
	if err := st.Load(ctx); err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(st, Version).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serve: listening on %s (backend=%s)", cfg.ListenAddr, cfg.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Printf("serve: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// openBackend creates the persistence backend named by the config.
func openBackend(ctx context.Context, cfg types.Config) (storage.Backend, error) {
	switch cfg.Backend {
	case types.BackendFile:
		return file.New(cfg.DataDir)
	case types.BackendSQLite:
		return sqlitekv.New(cfg.DataDir)
	case types.BackendRedis:
		return rediskv.New(ctx, cfg.RedisAddr, cfg.RedisDB)
	default:
		return nil, types.ErrBackendUnknown
	}
}
