package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// KeySigner signs transactions with a local private key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewKeySigner creates a signer from a hex-encoded private key
func NewKeySigner(privateKeyHex string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (s *KeySigner) Address() common.Address {
	return s.address
}

func (s *KeySigner) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return types.SignTx(tx, types.LatestSignerForChainID(chainID), s.key)
}

// keyProvider is a headless provider pinned to a single RPC node. There is
// no user to prompt, so it never rejects, and it cannot move off the node's
// chain: a switch to any other chain reports the chain as unknown, and
// add-chain is not supported.
type keyProvider struct {
	client  adapter.EthClient
	chainID uint64
}

func (p *keyProvider) ChainID(_ context.Context) (uint64, error) {
	return p.chainID, nil
}

func (p *keyProvider) SwitchChain(_ context.Context, chainID uint64) error {
	if chainID == p.chainID {
		return nil
	}
	return fmt.Errorf("%w: pinned to chain %d", domain.ErrUnrecognizedChain, p.chainID)
}

func (p *keyProvider) AddChain(_ context.Context, params ChainParams) error {
	return fmt.Errorf("cannot register chain %d on a fixed RPC node", params.ChainID)
}

func (p *keyProvider) SubscribeChanges(ctx context.Context) (<-chan ChangeEvent, error) {
	// A key-backed wallet never changes account or chain
	events := make(chan ChangeEvent)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events, nil
}

// NewKeyConnection builds a wallet connection backed by a local private key
// and a fixed RPC node. The chain id is read from the node once at
// connection time.
func NewKeyConnection(ctx context.Context, privateKeyHex string, client adapter.EthClient) (*Connection, error) {
	signer, err := NewKeySigner(privateKeyHex)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}

	return &Connection{
		Address: signer.Address(),
		ChainID: chainID.Uint64(),
		Client:  client,
		Signer:  signer,
		Provider: &keyProvider{
			client:  client,
			chainID: chainID.Uint64(),
		},
	}, nil
}
