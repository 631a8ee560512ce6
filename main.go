package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planroster/config"
	"planroster/db"
	"planroster/logger"
	"planroster/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a .json, .yaml or .toml config file")
	flag.Parse()

	cfg := config.Get(*configPath)

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db.SetConfigurations(cfg)
	database, err := db.Connect(log)
	if err != nil {
		log.Fatal("database unavailable", "error", err)
	}
	defer database.Close()

	if cfg.Seed {
		if err := db.Seed(database, log); err != nil {
			log.Fatal("seed failed", "error", err)
		}
	}

	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	router.Initialize(r, database, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("planroster listening", "port", cfg.ApiPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
