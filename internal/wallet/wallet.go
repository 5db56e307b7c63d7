package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// ChainParams describes a chain for a wallet add-chain request
type ChainParams struct {
	ChainID          uint64
	Name             string
	RPCURLs          []string
	ExplorerURLs     []string
	CurrencySymbol   string
	CurrencyDecimals int
}

// BaseTestnetParams returns the add-chain parameters for Base Goerli
func BaseTestnetParams() ChainParams {
	return ChainParams{
		ChainID:          domain.ChainBaseTestnet,
		Name:             domain.BaseTestnetName,
		RPCURLs:          []string{domain.BaseTestnetRPCURL},
		ExplorerURLs:     []string{domain.BaseTestnetExplorerURL},
		CurrencySymbol:   domain.BaseCurrencySymbol,
		CurrencyDecimals: domain.BaseCurrencyDecimals,
	}
}

// ChangeEvent signals that the wallet's active account or chain changed
type ChangeEvent struct {
	Address string
	ChainID uint64
}

// Provider is the wallet-side request surface. Methods may prompt the user;
// a declined prompt surfaces as domain.ErrUserRejected, and a switch to a
// chain the wallet does not know surfaces as domain.ErrUnrecognizedChain.
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Provider=MockWalletProvider,Signer=MockSigner
type Provider interface {
	// ChainID returns the wallet's currently active chain id
	ChainID(ctx context.Context) (uint64, error)

	// SwitchChain asks the wallet to move to the given chain
	SwitchChain(ctx context.Context, chainID uint64) error

	// AddChain asks the wallet to register a chain it does not know yet
	AddChain(ctx context.Context, params ChainParams) error

	// SubscribeChanges delivers account/chain change events until ctx is done
	SubscribeChanges(ctx context.Context) (<-chan ChangeEvent, error)
}

// Signer signs transactions on behalf of the connected account
type Signer interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Connection is the explicit wallet context threaded through every chain
// operation: the active account, the chain it believes it is on, an RPC
// client for that chain, and the signing/request primitives.
type Connection struct {
	Address  common.Address
	ChainID  uint64
	Client   adapter.EthClient
	Signer   Signer
	Provider Provider
}
