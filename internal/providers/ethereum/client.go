package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/logger"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

// AIMuse contract surface: fee read, payable mint, metadata update, the
// standard ERC721 reads, and the mint event carrying the assigned token id
const contractABI = `[
	{"constant":true,"inputs":[],"name":"mintFee","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"tokenURI","type":"string"}],"name":"mintNFT","outputs":[],"payable":true,"stateMutability":"payable","type":"function"},
	{"constant":false,"inputs":[{"name":"tokenId","type":"uint256"},{"name":"tokenURI","type":"string"}],"name":"updateMetadata","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"tokenId","type":"uint256"},{"indexed":true,"name":"owner","type":"address"},{"indexed":false,"name":"tokenURI","type":"string"}],"name":"NFTMinted","type":"event"}
]`

// ChainClient mediates all reads and writes against the AIMuse contract
// through a caller-supplied wallet connection. Writes are at-most-once:
// there is no automatic resubmission, because a resubmitted wallet
// transaction risks a double mint.
//
//go:generate mockgen -source=client.go -destination=../../mocks/chainclient.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// EnsureNetwork reports whether the connection is on an accepted network,
	// asking the wallet to switch (and register the chain if unknown) when it
	// is not. A wallet rejection is a normal failure, not an error.
	EnsureNetwork(ctx context.Context, conn *wallet.Connection) bool

	// Mint submits a mint transaction paying the contract's current fee and
	// waits for the assigned token id from the NFTMinted event
	Mint(ctx context.Context, tokenURI string, conn *wallet.Connection) (*domain.MintResult, error)

	// UpdateMetadata points an existing token at a new metadata URI
	UpdateMetadata(ctx context.Context, tokenID int64, tokenURI string, conn *wallet.Connection) (string, error)

	// TokenURI returns the token's on-chain metadata URI, or "" on any error
	TokenURI(ctx context.Context, tokenID int64, conn *wallet.Connection) string

	// OwnerOf returns the token's current owner, or "" on any error
	OwnerOf(ctx context.Context, tokenID int64, conn *wallet.Connection) string

	// BalanceOf returns the number of tokens held by an address, or 0 on any error
	BalanceOf(ctx context.Context, owner string, conn *wallet.Connection) int64
}

type chainClient struct {
	contract       common.Address
	contractABI    abi.ABI
	receiptPoll    time.Duration
	receiptTimeout time.Duration
}

func NewChainClient(contractAddress string, receiptPoll, receiptTimeout time.Duration) (ChainClient, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &chainClient{
		contract:       common.HexToAddress(contractAddress),
		contractABI:    parsed,
		receiptPoll:    receiptPoll,
		receiptTimeout: receiptTimeout,
	}, nil
}

// EnsureNetwork returns true when the connection is on Base mainnet or the
// Base Goerli testnet. Off-network connections are asked to switch to the
// testnet; an unknown chain is registered first, then the switch retried.
func (c *chainClient) EnsureNetwork(ctx context.Context, conn *wallet.Connection) bool {
	if domain.AcceptedNetwork(conn.ChainID) {
		return true
	}

	err := conn.Provider.SwitchChain(ctx, domain.ChainBaseTestnet)
	if errors.Is(err, domain.ErrUnrecognizedChain) {
		if addErr := conn.Provider.AddChain(ctx, wallet.BaseTestnetParams()); addErr != nil {
			logger.WarnCtx(ctx, "failed to register chain with wallet", zap.Error(addErr))
			return false
		}
		err = conn.Provider.SwitchChain(ctx, domain.ChainBaseTestnet)
	}
	if err != nil {
		logger.WarnCtx(ctx, "wallet declined network switch", zap.Error(err))
		return false
	}

	conn.ChainID = domain.ChainBaseTestnet
	return true
}

// Mint reads the current mint fee, submits mintNFT paying it, and extracts
// the assigned token id from the NFTMinted event in the receipt. A confirmed
// receipt without the event means the contract's event shape drifted; that
// surfaces as domain.ErrMintEventMissing rather than a silent zero id.
func (c *chainClient) Mint(ctx context.Context, tokenURI string, conn *wallet.Connection) (*domain.MintResult, error) {
	if !c.EnsureNetwork(ctx, conn) {
		return nil, domain.ErrNetworkMismatch
	}

	fee, err := c.mintFee(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read mint fee: %w", err)
	}

	data, err := c.contractABI.Pack("mintNFT", tokenURI)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	txHash, err := c.submitTransaction(ctx, conn, data, fee)
	if err != nil {
		return nil, err
	}

	receipt, err := c.waitForReceipt(ctx, conn, txHash)
	if err != nil {
		return nil, err
	}

	tokenID, err := c.mintedTokenID(receipt)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "mint confirmed",
		zap.Int64("tokenID", tokenID),
		zap.String("txHash", txHash.Hex()))

	return &domain.MintResult{
		TokenID: tokenID,
		TxHash:  txHash.Hex(),
	}, nil
}

// UpdateMetadata submits updateMetadata and returns the confirmed tx hash
func (c *chainClient) UpdateMetadata(ctx context.Context, tokenID int64, tokenURI string, conn *wallet.Connection) (string, error) {
	if !c.EnsureNetwork(ctx, conn) {
		return "", domain.ErrNetworkMismatch
	}

	data, err := c.contractABI.Pack("updateMetadata", big.NewInt(tokenID), tokenURI)
	if err != nil {
		return "", fmt.Errorf("failed to pack data: %w", err)
	}

	txHash, err := c.submitTransaction(ctx, conn, data, nil)
	if err != nil {
		return "", err
	}

	if _, err := c.waitForReceipt(ctx, conn, txHash); err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "metadata update confirmed",
		zap.Int64("tokenID", tokenID),
		zap.String("txHash", txHash.Hex()))

	return txHash.Hex(), nil
}

// TokenURI is a display-path read: errors are logged and reported as ""
func (c *chainClient) TokenURI(ctx context.Context, tokenID int64, conn *wallet.Connection) string {
	var uri string
	if err := c.call(ctx, conn, &uri, "tokenURI", big.NewInt(tokenID)); err != nil {
		logger.WarnCtx(ctx, "failed to read token URI",
			zap.Int64("tokenID", tokenID), zap.Error(err))
		return ""
	}
	return uri
}

// OwnerOf is a display-path read: errors are logged and reported as ""
func (c *chainClient) OwnerOf(ctx context.Context, tokenID int64, conn *wallet.Connection) string {
	var owner common.Address
	if err := c.call(ctx, conn, &owner, "ownerOf", big.NewInt(tokenID)); err != nil {
		logger.WarnCtx(ctx, "failed to read token owner",
			zap.Int64("tokenID", tokenID), zap.Error(err))
		return ""
	}
	return owner.Hex()
}

// BalanceOf is a display-path read: errors are logged and reported as 0
func (c *chainClient) BalanceOf(ctx context.Context, owner string, conn *wallet.Connection) int64 {
	var balance *big.Int
	if err := c.call(ctx, conn, &balance, "balanceOf", common.HexToAddress(owner)); err != nil {
		logger.WarnCtx(ctx, "failed to read balance",
			zap.String("owner", owner), zap.Error(err))
		return 0
	}
	return balance.Int64()
}

func (c *chainClient) mintFee(ctx context.Context, conn *wallet.Connection) (*big.Int, error) {
	var fee *big.Int
	if err := c.call(ctx, conn, &fee, "mintFee"); err != nil {
		return nil, err
	}
	return fee, nil
}

// call packs a view-function call, executes it against the contract and
// unpacks the single return value into out
func (c *chainClient) call(ctx context.Context, conn *wallet.Connection, out interface{}, method string, args ...interface{}) error {
	data, err := c.contractABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := conn.Client.CallContract(ctx, ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to call contract: %w", err)
	}

	if err := c.contractABI.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack result: %w", err)
	}
	return nil
}

// submitTransaction signs and broadcasts a contract call. The transaction is
// submitted exactly once; a signing rejection from the wallet passes through
// as domain.ErrUserRejected.
func (c *chainClient) submitTransaction(ctx context.Context, conn *wallet.Connection, data []byte, value *big.Int) (common.Hash, error) {
	nonce, err := conn.Client.PendingNonceAt(ctx, conn.Address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := conn.Client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := conn.Client.EstimateGas(ctx, ethereum.CallMsg{
		From:  conn.Address,
		To:    &c.contract,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := conn.Signer.SignTx(tx, new(big.Int).SetUint64(conn.ChainID))
	if err != nil {
		if errors.Is(err, domain.ErrUserRejected) {
			return common.Hash{}, err
		}
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := conn.Client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed.Hash(), nil
}

// waitForReceipt polls for the transaction receipt with exponential backoff,
// bounded by the configured receipt timeout and the caller's context
func (c *chainClient) waitForReceipt(ctx context.Context, conn *wallet.Connection, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.receiptPoll
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = c.receiptTimeout

	operation := func() error {
		r, err := conn.Client.TransactionReceipt(ctx, txHash)
		if errors.Is(err, ethereum.NotFound) {
			return fmt.Errorf("transaction %s not yet mined", txHash.Hex())
		}
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get receipt: %w", err))
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, txHash.Hex())
	}
	return receipt, nil
}

// mintedTokenID scans the receipt logs for the NFTMinted event and returns
// the token id from its first indexed topic
func (c *chainClient) mintedTokenID(receipt *types.Receipt) (int64, error) {
	eventID := c.contractABI.Events["NFTMinted"].ID

	for _, vLog := range receipt.Logs {
		if vLog.Address != c.contract || len(vLog.Topics) < 2 {
			continue
		}
		if vLog.Topics[0] != eventID {
			continue
		}
		return vLog.Topics[1].Big().Int64(), nil
	}

	return 0, domain.ErrMintEventMissing
}
