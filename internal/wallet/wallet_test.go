package wallet_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/mocks"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

// Well-known test key (hardhat account #0), never used on a real network
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

const testAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestNewKeySigner(t *testing.T) {
	signer, err := wallet.NewKeySigner(testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, signer.Address().Hex())

	// 0x prefix is accepted
	prefixed, err := wallet.NewKeySigner("0x" + testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), prefixed.Address())

	_, err = wallet.NewKeySigner("not a key")
	assert.Error(t, err)
}

func TestKeySignerSignTx(t *testing.T) {
	signer, err := wallet.NewKeySigner(testPrivateKey)
	require.NoError(t, err)

	chainID := big.NewInt(int64(domain.ChainBaseTestnet))
	to := signer.Address()
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    0,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      21000,
		GasPrice: big.NewInt(1),
	})

	signed, err := signer.SignTx(tx, chainID)
	require.NoError(t, err)

	from, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), from)
}

func TestNewKeyConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	client.EXPECT().ChainID(gomock.Any()).
		Return(big.NewInt(int64(domain.ChainBaseTestnet)), nil)

	conn, err := wallet.NewKeyConnection(context.Background(), testPrivateKey, client)
	require.NoError(t, err)
	require.NotNil(t, conn)

	assert.Equal(t, testAddress, conn.Address.Hex())
	assert.Equal(t, domain.ChainBaseTestnet, conn.ChainID)
	require.NotNil(t, conn.Provider)

	// Pinned provider reports the node's chain and refuses to leave it
	chainID, err := conn.Provider.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ChainBaseTestnet, chainID)

	assert.NoError(t, conn.Provider.SwitchChain(context.Background(), domain.ChainBaseTestnet))
	assert.ErrorIs(t,
		conn.Provider.SwitchChain(context.Background(), domain.ChainBaseMainnet),
		domain.ErrUnrecognizedChain)
	assert.Error(t, conn.Provider.AddChain(context.Background(), wallet.BaseTestnetParams()))
}

func TestManagerAppliesChangeEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := make(chan wallet.ChangeEvent, 2)
	provider := mocks.NewMockWalletProvider(ctrl)
	provider.EXPECT().SubscribeChanges(gomock.Any()).Return((<-chan wallet.ChangeEvent)(events), nil)

	manager := wallet.NewManager(wallet.Connection{
		ChainID:  domain.ChainBaseMainnet,
		Provider: provider,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- manager.Run(ctx)
	}()

	events <- wallet.ChangeEvent{Address: testAddress, ChainID: domain.ChainBaseTestnet}

	require.Eventually(t, func() bool {
		conn := manager.Current()
		return conn.ChainID == domain.ChainBaseTestnet && conn.Address.Hex() == testAddress
	}, time.Second, 10*time.Millisecond)

	// Zero fields leave the previous value in place
	events <- wallet.ChangeEvent{ChainID: domain.ChainBaseMainnet}
	require.Eventually(t, func() bool {
		conn := manager.Current()
		return conn.ChainID == domain.ChainBaseMainnet && conn.Address.Hex() == testAddress
	}, time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestBaseTestnetParams(t *testing.T) {
	params := wallet.BaseTestnetParams()

	assert.Equal(t, domain.ChainBaseTestnet, params.ChainID)
	assert.Equal(t, "Base Goerli Testnet", params.Name)
	assert.Equal(t, []string{"https://goerli.base.org"}, params.RPCURLs)
	assert.Equal(t, []string{"https://goerli.basescan.org"}, params.ExplorerURLs)
	assert.Equal(t, "ETH", params.CurrencySymbol)
	assert.Equal(t, 18, params.CurrencyDecimals)
}
