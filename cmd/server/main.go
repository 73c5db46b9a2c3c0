package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/zeromade/storefront/internal/config"
	"github.com/zeromade/storefront/internal/events"
	"github.com/zeromade/storefront/internal/httpserver"
	"github.com/zeromade/storefront/internal/logging"
	"github.com/zeromade/storefront/internal/pricing"
	"github.com/zeromade/storefront/internal/search"
	"github.com/zeromade/storefront/internal/service/account"
	"github.com/zeromade/storefront/internal/service/catalog"
	"github.com/zeromade/storefront/internal/service/orders"
	"github.com/zeromade/storefront/internal/store"
	"github.com/zeromade/storefront/internal/tokens"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "zeromade-api")
	slog.SetDefault(logger)

	st := store.NewFileStore(cfg.DataPath)

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	var searchClient *search.Client
	if cfg.ESURL != "" {
		var err error
		searchClient, err = search.New(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			log.Fatalf("search init: %v", err)
		}
	}

	tokenSvc := tokens.NewService(cfg.JWTSecret, cfg.TokenTTL)
	accountSvc := &account.Service{Store: st, Tokens: tokenSvc, Producer: producer}
	catalogSvc := &catalog.Service{Store: st, Producer: producer, Search: searchClient}
	orderSvc := &orders.Service{
		Store: st,
		Pricing: pricing.Config{
			FreeShippingThreshold: cfg.FreeShippingThreshold,
			ShippingFee:           cfg.ShippingFee,
		},
		Producer: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(httpserver.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Use(echomw.BodyLimit("10K"))

	httpserver.Register(e, &httpserver.Deps{
		AccountSvc:     accountSvc,
		ProductHandler: &httpserver.ProductHandler{Svc: catalogSvc},
		AuthHandler:    &httpserver.AuthHandler{Svc: accountSvc},
		OrderHandler:   &httpserver.OrderHandler{Svc: orderSvc},
		SearchHandler:  &httpserver.SearchHandler{Client: searchClient},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	logger.Info("stopped")
}
