package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/api/middleware"
	"github.com/lokeshwaran100/ai-muse/internal/api/server"
	"github.com/lokeshwaran100/ai-muse/internal/config"
	"github.com/lokeshwaran100/ai-muse/internal/generator"
	"github.com/lokeshwaran100/ai-muse/internal/logger"
	"github.com/lokeshwaran100/ai-muse/internal/providers/ethereum"
	"github.com/lokeshwaran100/ai-muse/internal/store"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting AI-Muse API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and placeholder generation
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	gen := generator.New(cfg.Generator, clock)
	content := generator.NewContentStore(adapter.NewJSON())

	// Wire the on-chain read path when RPC access is configured. Without it
	// the server still runs; only the onchain endpoint degrades.
	var chain ethereum.ChainClient
	var readConn *wallet.Connection
	if cfg.Ethereum.RPCURL != "" && cfg.Ethereum.ContractAddress != "" {
		client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("url", cfg.Ethereum.RPCURL))
		}
		defer client.Close()

		chainID, err := client.ChainID(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to read chain id", zap.Error(err))
		}

		chain, err = ethereum.NewChainClient(cfg.Ethereum.ContractAddress, cfg.Ethereum.ReceiptPoll, cfg.Ethereum.ReceiptTimeout)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
		}
		readConn = &wallet.Connection{
			ChainID: chainID.Uint64(),
			Client:  client,
		}
		logger.InfoCtx(ctx, "Connected to Ethereum RPC",
			zap.Uint64("chainID", readConn.ChainID),
			zap.String("contract", cfg.Ethereum.ContractAddress),
		)
	} else {
		logger.WarnCtx(ctx, "Ethereum RPC not configured, onchain reads disabled")
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, gen, content, chain, readConn)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
