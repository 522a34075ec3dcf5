package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/exchangerates"
	"max.ks1230/expense-tracker/internal/clients/tg"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/messages"
	"max.ks1230/expense-tracker/internal/model/rates"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/view"
	"max.ks1230/expense-tracker/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closeQuietly("tracer", tracer.Close)

	db, err := storage.New(conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer closeQuietly("storage", db.Close)

	rateCache, err := cache.New(conf.Cache(), conf.App().HomeCurrency())
	if err != nil {
		logger.Fatal("failed to init rate cache:", zap.Error(err))
	}

	converter := rates.NewConverter(conf.App(), exchangerates.New(conf.Rates()), rateCache)
	expenseService := expenses.NewService(db, converter)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err = expenseService.SeedCategories(ctx, conf.App().SeedCategories()); err != nil {
		logger.Fatal("failed to seed categories:", zap.Error(err))
	}

	client, err := tg.New(conf.Telegram(), conf.Rates().Timeout())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}
	if err = client.SetCommands(messages.Menu); err != nil {
		logger.Warn("failed to publish command menu", zap.Error(err))
	}

	handler := messages.NewHandler(
		expenseService,
		reports.NewGenerator(conf.App(), db),
		converter,
		view.NewRenderer(conf.App().HomeCurrency(), conf.App().WeekStartDay()),
	)
	msgService := messages.NewService(client, handler, conf.Telegram())

	metricsServer := serveMetrics(conf.Metrics().Addr())

	logger.Info("Bot init - end")

	client.ListenUpdates(ctx, msgService)

	if metricsServer != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err = metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to stop metrics server", zap.Error(err))
		}
	}
}

func serveMetrics(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	go func() {
		logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return srv
}

func closeQuietly(what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("failed to close "+what, zap.Error(err))
	}
}
