package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ironvale/bountyhall/internal/bootstrap"
	"github.com/ironvale/bountyhall/internal/catalog"
	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/engine"
	"github.com/ironvale/bountyhall/internal/handler"
	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/profile"
	"github.com/ironvale/bountyhall/internal/server"
	"github.com/ironvale/bountyhall/internal/stream"
	"github.com/ironvale/bountyhall/internal/unlock"
	"github.com/ironvale/bountyhall/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := bootstrap.SetupLogger(cfg); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx := context.Background()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to open profile store", "error", err)
		os.Exit(1)
	}

	loader, err := catalog.NewLoader()
	if err != nil {
		logger.Error("Failed to create catalog loader", "error", err)
		os.Exit(1)
	}
	cat, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		logger.Error("Failed to load bounty catalog", "error", err)
		os.Exit(1)
	}
	logger.Info(bootstrap.LogMsgCatalogReady, "entries", cat.Len(), "path", cfg.CatalogPath)

	engineCfg, err := config.LoadEngine(cfg.EngineConfigPath)
	if err != nil {
		logger.Warn("Engine config invalid, using defaults", "error", err)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		logger.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	hub := stream.NewHub()
	hub.Start()
	hub.Attach(bus)

	unlockStore := unlock.NewStoreSource(store)
	cachedUnlocks := unlock.NewCachedSource(unlockStore, unlock.DefaultCacheSize, unlock.DefaultCacheTTL)

	eng, err := engine.New(engine.Deps{
		Catalog:  cat,
		Records:  profile.NewRecords(store),
		Calendar: newWallCalendar(cfg.DayLengthSeconds),
		Unlocks:  cachedUnlocks,
		Delivery: &streamDelivery{hub: hub},
		Spawner:  &streamSpawner{hub: hub},
		Bus:      publisher,
		Config:   engineCfg,
	})
	if err != nil {
		logger.Error("Failed to construct engine", "error", err)
		os.Exit(1)
	}

	var pinger handler.Pinger
	if p, ok := store.(handler.Pinger); ok {
		pinger = p
	}

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		TrustedProxies:    cfg.TrustedProxies,
		StorePinger:       pinger,
		Unlocks:           unlockStore,
		InvalidateUnlocks: cachedUnlocks.Invalidate,
	}, eng, hub)

	// Background day sweep so claimed bounties purge even when no
	// client is polling.
	sweep := worker.NewDaySweepWorker(eng)
	sweep.Start()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server exited", "error", err)
	case sig := <-stop:
		logger.Info("Received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Sweep:  sweep,
		Hub:    hub,
		Store:  store,
	})
}
