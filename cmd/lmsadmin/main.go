package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	adminui "github.com/lmsdesk/admin-ui"
	"github.com/lmsdesk/admin-ui/internal/bootstrap"
	httpx "github.com/lmsdesk/admin-ui/internal/http"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting lms admin dashboard",
		"addr", cfg.HTTP.Addr,
		"upstream", cfg.Upstream.BaseURL,
		"dev", cfg.IsDev,
	)

	redisClient, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cfg,
		Redis:  redisClient,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	templateFS, staticFS, err := assetFilesystems(cfg.IsDev)
	if err != nil {
		return err
	}

	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("build renderer: %w", err)
	}

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Renderer: renderer,
		StaticFS: staticFS,
		Logger:   logger,
	})

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	return bootstrap.ShutdownHTTPServer(bootstrap.ShutdownConfig{
		Context: ctx,
		Server:  server,
		Logger:  logger,
	})
}

// assetFilesystems picks disk-backed assets in dev mode so template edits
// show up without a rebuild, and the embedded copies otherwise.
func assetFilesystems(isDev bool) (templates fs.FS, static fs.FS, err error) {
	if isDev {
		return os.DirFS("web/templates"), os.DirFS("web/static"), nil
	}

	templates, err = fs.Sub(adminui.TemplateFS, "web/templates")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded templates: %w", err)
	}
	static, err = fs.Sub(adminui.StaticFS, "web/static")
	if err != nil {
		return nil, nil, fmt.Errorf("embedded static assets: %w", err)
	}
	return templates, static, nil
}
