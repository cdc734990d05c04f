// @title EduGenie API
// @version 1.0
// @description Study helper backed by a generative text model: ask, explain, quiz and summarize.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8000
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "edugenie/cmd/api/docs"
	"edugenie/internal/adapter/llm"
	"edugenie/internal/config"
	"edugenie/internal/logger"
	"edugenie/internal/router"
	"edugenie/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	// Load configuration; a missing credential stops the process here.
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	generator, err := llm.New(ctx, cfg.Model)
	if err != nil {
		appLogger.Fatal("Failed to create text model client", zap.Error(err))
	}

	promptService := service.NewPromptService(generator)
	app := router.New(promptService, router.Options{
		StaticDir:    cfg.Server.StaticDir,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.String("addr", cfg.Server.Addr()), zap.String("env", cfg.Logger.Env))
		return app.Listen(cfg.Server.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Fatal("Server stopped with error", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
