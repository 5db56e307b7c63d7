package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/config"
	"github.com/lokeshwaran100/ai-muse/internal/generator"
	"github.com/lokeshwaran100/ai-muse/internal/logger"
	"github.com/lokeshwaran100/ai-muse/internal/messaging"
	"github.com/lokeshwaran100/ai-muse/internal/orchestrator"
	"github.com/lokeshwaran100/ai-muse/internal/providers/ethereum"
	"github.com/lokeshwaran100/ai-muse/internal/providers/jetstream"
	"github.com/lokeshwaran100/ai-muse/internal/store"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  mint [flags] mint "<prompt>"
  mint [flags] update <token-id> "<prompt>"

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMintConfig(*configFile, *envPath)
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
			"service": "mint-cli",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if cfg.PrivateKey == "" {
		logger.FatalCtx(ctx, "AIMUSE_PRIVATE_KEY is required")
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Dial the RPC endpoint and build the key-backed wallet connection
	client, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err), zap.String("url", cfg.Ethereum.RPCURL))
	}
	defer client.Close()

	conn, err := wallet.NewKeyConnection(ctx, cfg.PrivateKey, client)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create wallet connection", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Wallet connected",
		zap.String("address", conn.Address.Hex()),
		zap.Uint64("chainID", conn.ChainID),
	)

	chain, err := ethereum.NewChainClient(cfg.Ethereum.ContractAddress, cfg.Ethereum.ReceiptPoll, cfg.Ethereum.ReceiptTimeout)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	gen := generator.New(cfg.Generator, clock)
	content := generator.NewContentStore(jsonAdapter)

	// Lifecycle events are optional: without a broker the flows still run.
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
	}

	orch := orchestrator.New(gen, content, chain, dataStore, publisher, clock)

	result, err := run(ctx, orch, conn, flag.Args())
	if err != nil {
		var flowErr *orchestrator.FlowError
		if errors.As(err, &flowErr) && flowErr.Stage == orchestrator.StagePersistingRecord {
			// The chain write is confirmed, only the mirror record is missing.
			// Surface the result so the mint is not lost.
			logger.ErrorCtx(ctx, err, zap.String("flowID", result.FlowID))
			printResult(result)
			fmt.Fprintln(os.Stderr, "warning: transaction confirmed but the record mirror failed; re-run the API sync or retry the persist")
			os.Exit(1)
		}
		logger.ErrorCtx(ctx, err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResult(result)
}

// run dispatches the CLI subcommand to the matching orchestrator flow
func run(ctx context.Context, orch *orchestrator.Orchestrator, conn *wallet.Connection, args []string) (*orchestrator.Result, error) {
	switch args[0] {
	case "mint":
		if len(args) != 2 {
			return nil, errors.New("usage: mint \"<prompt>\"")
		}
		return orch.Mint(ctx, conn, args[1])
	case "update":
		if len(args) != 3 {
			return nil, errors.New("usage: update <token-id> \"<prompt>\"")
		}
		tokenID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", args[1], err)
		}
		return orch.Update(ctx, conn, tokenID, args[2])
	default:
		return nil, fmt.Errorf("unknown command %q", args[0])
	}
}

func printResult(result *orchestrator.Result) {
	fmt.Printf("token ID:  %d\n", result.TokenID)
	fmt.Printf("tx hash:   %s\n", result.TxHash)
	fmt.Printf("token URI: %s\n", result.TokenURI)
	if result.Metadata != nil {
		fmt.Printf("name:      %s\n", result.Metadata.Name)
		fmt.Printf("image:     %s\n", result.Metadata.Image)
	}
}
