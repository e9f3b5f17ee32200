package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/NetoLedger/internal/api"
	"github.com/leon37/NetoLedger/internal/api/controller"
	"github.com/leon37/NetoLedger/internal/app"
	"github.com/leon37/NetoLedger/internal/config"
	"github.com/leon37/NetoLedger/internal/logger"
)

// @title           NetoLedger API
// @version         1.0
// @description     Transaction classification and net-worth summaries backed by a generative model.

// @contact.name    API Support

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host            localhost:5000
// @BasePath        /

func main() {
	conf, err := config.LoadConfig(os.Getenv("NETO_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Setup(conf.Log.Level, conf.Log.Format); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	slog.Info("NetoLedger starting", "provider", conf.LLM.Provider, "store", conf.Store.Driver)

	gin.SetMode(conf.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	deps, err := app.New(initCtx, conf)
	cancel()
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	r := api.NewEngine()
	api.RegisterRoutes(r,
		controller.NewClassifyController(deps.Classify),
		controller.NewNetworthController(deps.Networth),
	)

	srv := &http.Server{
		Addr:              conf.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("NetoLedger web server listening", "port", conf.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	if err := deps.Close(shutdownCtx); err != nil {
		slog.Error("close store failed", "error", err)
	}
}
