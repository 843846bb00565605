// cmd/echomind/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keshon/echomind/internal/ai"
	"github.com/keshon/echomind/internal/api"
	"github.com/keshon/echomind/internal/config"
	"github.com/keshon/echomind/internal/mind"
	v "github.com/keshon/echomind/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v v%v...", v.AppName, v.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()
	provider := ai.New(cfg.AIProvider)

	m, err := mind.New(cfg, provider)
	if err != nil {
		log.Fatal(err)
	}

	m.StartWorkers()

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewServer(m).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] HTTP listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] HTTP server error:", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERR] HTTP shutdown:", err)
	}
	m.Stop()
	cancel()

	log.Println("[INFO] EchoMind exited cleanly")
}
