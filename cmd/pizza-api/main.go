package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/MikeMC777/pizzeria-api/internal/catalog"
	"github.com/MikeMC777/pizzeria-api/internal/config"
	"github.com/MikeMC777/pizzeria-api/internal/contact"
	"github.com/MikeMC777/pizzeria-api/internal/logger"
	"github.com/MikeMC777/pizzeria-api/internal/order"
	"github.com/MikeMC777/pizzeria-api/internal/store"
)

// @title       Pizza API
// @version     1.0
// @description Menu, pizza of the day, orders and contact form for the pizza storefront.
// @BasePath    /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if !strings.EqualFold(cfg.LogLevel, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	pool, err := store.Connect(context.Background(), store.Options{
		DSN:      cfg.PostgresDSN,
		MaxConns: cfg.DBMaxConns,
		Timeout:  cfg.DBTimeout,
	}, log)
	if err != nil {
		log.Error("connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	r := newRouter(deps{
		catalog:   catalog.NewService(catalog.NewPGRepo(pool, cfg.DBTimeout)),
		orders:    order.NewService(order.NewPGRepo(pool, cfg.DBTimeout, log), log),
		contact:   contact.NewService(log),
		db:        pool,
		log:       log,
		publicDir: cfg.PublicDir,
	})

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		})(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("pizza-api listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
}
