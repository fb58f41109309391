package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/souvikjs01/unkey/internal/config"
	"github.com/souvikjs01/unkey/internal/handler"
	"github.com/souvikjs01/unkey/internal/http"
	"github.com/souvikjs01/unkey/internal/scheduler"
	"github.com/souvikjs01/unkey/internal/service"
	"github.com/souvikjs01/unkey/internal/view"
	"github.com/souvikjs01/unkey/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newCmdServe(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address (env DASH_ADDR)")
	cmd.Flags().BoolVar(&cfg.EnableSwagger, "swagger", cfg.EnableSwagger, "Serve /swagger (env DASH_ENABLE_SWAGGER)")
	cmd.Flags().DurationVar(&cfg.PurgeInterval, "purge-interval", cfg.PurgeInterval, "How often deleted namespaces are purged, 0 disables (env DASH_PURGE_INTERVAL)")
	cmd.Flags().DurationVar(&cfg.PurgeRetention, "purge-retention", cfg.PurgeRetention, "How long deleted namespaces are kept (env DASH_PURGE_RETENTION)")
	cmd.Flags().Float64Var(&cfg.APIRateLimit, "api-rate-limit", cfg.APIRateLimit, "API requests per second per organization, 0 disables (env DASH_API_RATE_LIMIT)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if cfg.JWTSecret == "" {
		return service.ErrMissingSecret
	}

	conn, svc, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	e := http.NewRouter(
		handler.NewPageHandler(svc, cfg.OnboardingPath),
		handler.NewRatelimitHandler(svc),
		service.NewAuthService(cfg.JWTSecret),
		renderer,
		http.Options{
			SignInPath:    cfg.SignInPath,
			APIRateLimit:  cfg.APIRateLimit,
			EnableSwagger: cfg.EnableSwagger,
			Assets:        view.Assets(),
		},
	)

	if cfg.PurgeInterval > 0 && cfg.PurgeRetention > 0 {
		purger := scheduler.New(svc, cfg.PurgeInterval, cfg.PurgeRetention)
		purger.Start()
		defer purger.Stop()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", cfg.Addr, "store", cfg.Store)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
