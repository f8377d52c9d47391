package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuntech/nutrisnap-backend/internal/setup"
	"github.com/anuntech/nutrisnap-backend/internal/setup/app"
	"github.com/anuntech/nutrisnap-backend/internal/setup/config"
)

func main() {
	config.LoadEnvFile(".env")
	cfg := config.Load()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := setup.NewKeyValueStore(startCtx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	application, err := app.New(startCtx, store, app.Keys{
		CustomFoods: cfg.CustomFoodsKey,
		Recipes:     cfg.RecipesKey,
	})
	cancelStart()
	if err != nil {
		store.Close()
		log.Fatal(err)
	}

	log.Printf("server is running with port %s (storage: %s)", cfg.Port, cfg.StorageDriver)

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setup.Server(application, cfg),
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		err := sm.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	log.Println("received terminate, graceful shutdown", sig)

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sm.Shutdown(tc); err != nil {
		log.Printf("error shutting down server: %v", err)
	}
	if err := application.Close(); err != nil {
		log.Printf("error closing storage: %v", err)
	}
}
