package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/docsite/internal/api"
	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/view"
	"github.com/dgallion1/docsite/web"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	log := cfg.NewLogger()
	if err != nil {
		log.Error("load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	docsFS := web.Docs()
	if cfg.DocsDir != "" {
		docsFS = os.DirFS(cfg.DocsDir)
	}
	var assetsFS fs.FS = web.Assets()
	if cfg.AssetsDir != "" {
		assetsFS = os.DirFS(cfg.AssetsDir)
	}

	views, err := view.New(web.Templates(), view.Site{
		Title:       cfg.SiteTitle,
		Description: cfg.SiteDescription,
	})
	if err != nil {
		log.Error("load views", "error", err)
		os.Exit(1)
	}

	resolver := docs.NewResolver(docsFS, docs.WithBaseTitle(cfg.DocsTitle))
	srv := api.NewServer(resolver, views, assetsFS, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting docsite", "port", cfg.Port, "docs_dir", cfg.DocsDir)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// Graceful shutdown.
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
