package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "dfwportal/internal/api/http"
	"dfwportal/internal/config"
	"dfwportal/internal/core/push"
	"dfwportal/internal/core/rule"
	"dfwportal/internal/events"
	"dfwportal/internal/nsx"
	"dfwportal/internal/store/frm"
)

func main() {
	configPath := flag.String("config", "", "path to config file (yaml)")
	flag.Parse()

	// == bootstrap ==
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	provider := config.NewProvider(*configPath, cfg)

	store, err := frm.NewFrmStore(cfg.Server.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// == services ==
	hub := events.NewHub()
	manager := nsx.NewManager(provider)
	ruleService := rule.NewRuleService(store)
	pushService := push.NewPushService(manager, store, hub)

	// == rest api ==
	router := httpapi.NewApiRouter(httpapi.RouterDeps{
		RuleService: ruleService,
		PushService: pushService,
		Hub:         hub,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// config reload watcher
	go func() {
		if err := provider.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[config] watch stopped: %v", err)
		}
	}()

	go func() {
		log.Printf("[*] portal listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("[*] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
		os.Exit(1)
	}
}
