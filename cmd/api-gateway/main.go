package main

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/evermark-labs/evermark-backend/internal/content"
	"github.com/evermark-labs/evermark-backend/internal/ethereum"
	"github.com/evermark-labs/evermark-backend/internal/metrics"
	"github.com/evermark-labs/evermark-backend/internal/service"
	"github.com/evermark-labs/evermark-backend/internal/transport"
)

var config struct {
	Addr    string `long:"addr" env:"API_GATEWAY_ADDR" description:"listen addr" default:":8000"`
	RPCURL  string `long:"rpc-url" env:"LEDGER_RPC_URL" description:"ledger RPC endpoint" default:"http://localhost:8545"`
	ChainID int64  `long:"chain-id" env:"LEDGER_CHAIN_ID" description:"ledger chain id" default:"8453"`

	SignerKey string `long:"signer-key" env:"SIGNER_KEY" description:"hex private key for submissions"`

	MarkAddr        string `long:"mark-addr" env:"CONTRACT_MARK" description:"mark contract address"`
	AuctionAddr     string `long:"auction-addr" env:"CONTRACT_AUCTION" description:"auction contract address"`
	VotingAddr      string `long:"voting-addr" env:"CONTRACT_VOTING" description:"voting contract address"`
	CatalogAddr     string `long:"catalog-addr" env:"CONTRACT_CATALOG" description:"staking catalog contract address"`
	LeaderboardAddr string `long:"leaderboard-addr" env:"CONTRACT_LEADERBOARD" description:"leaderboard contract address"`
	RewardsAddr     string `long:"rewards-addr" env:"CONTRACT_REWARDS" description:"rewards contract address"`

	GatewayURL     string        `long:"gateway-url" env:"CONTENT_GATEWAY_URL" description:"content gateway base URL" default:"https://gateway.pinata.cloud"`
	PinURL         string        `long:"pin-url" env:"CONTENT_PIN_URL" description:"pinning endpoint" default:"https://api.pinata.cloud/pinning/pinFileToIPFS"`
	PinKey         string        `long:"pin-key" env:"CONTENT_PIN_KEY" description:"pinning API key"`
	PinSecret      string        `long:"pin-secret" env:"CONTENT_PIN_SECRET" description:"pinning API secret"`
	ContentTimeout time.Duration `long:"content-timeout" env:"CONTENT_TIMEOUT" description:"content fetch timeout" default:"10s"`

	ReceiptInterval time.Duration `long:"receipt-interval" env:"RECEIPT_POLL_INTERVAL" description:"receipt poll interval" default:"2s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	client, err := ethclient.DialContext(ctx, config.RPCURL)
	if err != nil {
		logger.Fatal("Dial ledger RPC", zap.Error(err))
	}
	defer client.Close()

	key, err := crypto.HexToECDSA(config.SignerKey)
	if err != nil {
		logger.Fatal("Parse signer key", zap.Error(err))
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(config.ChainID))
	if err != nil {
		logger.Fatal("Build transactor", zap.Error(err))
	}

	ledgerMetrics := metrics.NewLedgerClient()
	clients, err := ethereum.NewClients(client, ethereum.Addresses{
		Mark:        common.HexToAddress(config.MarkAddr),
		Auction:     common.HexToAddress(config.AuctionAddr),
		Voting:      common.HexToAddress(config.VotingAddr),
		Catalog:     common.HexToAddress(config.CatalogAddr),
		Leaderboard: common.HexToAddress(config.LeaderboardAddr),
		Rewards:     common.HexToAddress(config.RewardsAddr),
	}, ledgerMetrics)
	if err != nil {
		logger.Fatal("Build contract clients", zap.Error(err))
	}
	submitter := ethereum.NewSubmitter(clients, opts, client, config.ReceiptInterval, ledgerMetrics, logger)

	contentMetrics := metrics.NewContentStore()
	contentResolver := content.NewResolver(config.GatewayURL, config.ContentTimeout, contentMetrics, logger)
	publisher := content.NewPublisher(config.PinURL, config.PinKey, config.PinSecret, config.ContentTimeout, contentMetrics, logger)

	resolver := service.NewResolver(clients.Mark, contentResolver, logger)
	scanner := service.NewScanner(clients.Mark, resolver, metrics.NewScanner(), logger)
	auctions := service.NewAuctionCoordinator(clients.Auction, submitter, logger)
	voting := service.NewVotingCoordinator(clients.Voting, clients.Catalog, submitter, logger)
	leaderboard := service.NewLeaderboardService(clients.Leaderboard, clients.Voting, resolver, logger)
	rewards := service.NewRewardsCoordinator(clients.Rewards, submitter, logger)
	creation := service.NewCreationService(publisher, submitter, logger)

	handler := transport.NewHandler(scanner, resolver, auctions, voting, leaderboard, rewards, creation, logger)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
