package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	. "MissileCommand/internal/game"
)

type AppConfig struct {
	ConfigPath string
	Overrides  ParamOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		ConfigPath: "configs/world.json",
	}
}

// ResolveParams loads the world config and applies command-line overrides. A bad
// config file is logged and the defaults are used.
func ResolveParams(cfg AppConfig) Params {
	params := DefaultParams()
	loaded, err := loadParamsFromFile(cfg.ConfigPath, params)
	if err != nil {
		log.Printf("world config: %v (using defaults)", err)
	} else {
		params = loaded
	}
	return applyParamOverrides(params, cfg.Overrides)
}

func StartApp(addr string, cfg AppConfig) {
	params := ResolveParams(cfg)
	hub := NewHub(params)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go hub.Run(ctx)

	// Periodic cleanup of empty rooms (every 60 seconds)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := hub.CleanupEmptyRooms(); n > 0 {
					log.Printf("cleaned up %d empty room(s)", n)
				}
			}
		}
	}()

	srv := &http.Server{Addr: addr, Handler: newRouter(hub)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("starting web server on %s (ammo %d, reload %dms, spawn %dms, max attackers %d)\n",
		addr, params.MaxAmmo, params.ReloadMs, params.SpawnIntervalMs, params.MaxAttackers)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server: %v", err)
	}
}
