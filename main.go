package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blogpessoal/config"
	"blogpessoal/database"
	"blogpessoal/logger"
	"blogpessoal/metrics"
	"blogpessoal/routes"
	"blogpessoal/services"
	"blogpessoal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})
	log := logger.L()
	defer logger.Sync()

	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	if cfg.AppEnv == "production" || cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := utils.RegisterValidations(); err != nil {
		return err
	}
	if err := metrics.Register(nil); err != nil {
		return errors.Wrap(err, "register metrics")
	}

	hub := services.NewHubService()
	defer hub.Stop()

	router := routes.NewRouter(routes.Dependencies{
		Config: cfg,
		DB:     db,
		Hasher: utils.NewBcryptHasherWithCost(cfg.BcryptCost),
		Hub:    hub,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return errors.Wrap(err, "listen")
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown, so the hub
	// closes them before the server drains.
	hub.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	log.Info("server stopped cleanly")
	return nil
}
