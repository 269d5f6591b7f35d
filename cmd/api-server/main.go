package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"animehub/internal/api"
	"animehub/internal/dataset"
	"animehub/internal/engine"
	"animehub/pkg/database"
	"animehub/pkg/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "animehub-api")

	cfg := utils.LoadAppConfig()

	table, err := loadTable(cfg)
	if err != nil {
		entry.Fatalf("load dataset: %v", err)
	}
	entry.Infof("Loaded %d anime entries from %s source", len(table.Rows), cfg.Source)

	if len(table.Rows) > cfg.SampleSize {
		entry.Infof("Sampling %d entries for performance", cfg.SampleSize)
		table = dataset.Sample(table, cfg.SampleSize, cfg.SampleSeed)
	}

	// Everything the queries touch is built here, before serving starts.
	// A degenerate corpus is fatal.
	eng, err := engine.New(table, entry)
	if err != nil {
		entry.Fatalf("build recommendation engine: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(entry))
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	handler := api.NewHandler(eng, entry)
	handler.RegisterRoutes(router)

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		entry.Infof("Anime Recommendation API listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		entry.Infof("shutdown signal received: %s", sig)
	case err := <-errCh:
		entry.Errorf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		entry.Errorf("http shutdown error: %v", err)
	}
	entry.Info("server stopped")
}

func loadTable(cfg utils.AppConfig) (*dataset.Table, error) {
	switch cfg.Source {
	case utils.SourceSQLite:
		db := database.MustOpen(database.DefaultConfig())
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return dataset.LoadSQLite(ctx, db)
	case utils.SourceCSV:
		return dataset.LoadCSV(cfg.CSVPath)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
}
