package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/raylin-tw/docrelay/internal/ai"
	"github.com/raylin-tw/docrelay/internal/config"
	"github.com/raylin-tw/docrelay/internal/docstore"
	"github.com/raylin-tw/docrelay/internal/handler"
	"github.com/raylin-tw/docrelay/internal/messenger"
	"github.com/raylin-tw/docrelay/internal/middleware"
	"github.com/raylin-tw/docrelay/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "docrelay",
		Short: "webhook-driven document q&a relay",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run docrelay server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("doc_store", cfg.DocStore.Type),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.Int("documents", len(cfg.Documents)),
	)

	// Clients are built once at startup and treated as immutable afterwards.
	store, err := docstore.New(cfg.DocStore)
	if err != nil {
		return fmt.Errorf("init doc store: %w", err)
	}
	provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		return fmt.Errorf("init ai provider: %w", err)
	}
	msgr, err := messenger.New(cfg.Messenger)
	if err != nil {
		return fmt.Errorf("init messenger: %w", err)
	}

	relayService := service.NewRelayService(
		store,
		provider,
		msgr,
		cfg.AI.Model,
		cfg.Documents,
		cfg.AckMessage,
		time.Duration(cfg.AI.TimeoutSec)*time.Second,
	)

	deps := handler.RouterDeps{
		Webhook: handler.NewWebhookHandler(cfg.ChannelSecret, relayService, msgr),
		Health:  handler.NewHealthHandler(),
	}

	engine, err := webapi.NewEngine(
		"/",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.AccessLog(),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
