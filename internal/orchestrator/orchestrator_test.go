package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/mocks"
	"github.com/lokeshwaran100/ai-muse/internal/store"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

const testOwner = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

type testEnv struct {
	generator *mocks.MockGenerator
	content   *mocks.MockContentStore
	chain     *mocks.MockChainClient
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	conn      *wallet.Connection
	o         *Orchestrator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &testEnv{
		generator: mocks.NewMockGenerator(ctrl),
		content:   mocks.NewMockContentStore(ctrl),
		chain:     mocks.NewMockChainClient(ctrl),
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		conn: &wallet.Connection{
			Address: common.HexToAddress(testOwner),
			ChainID: domain.ChainBaseTestnet,
		},
	}

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().
		Return(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)).
		AnyTimes()

	env.o = New(env.generator, env.content, env.chain, env.store, env.publisher, clock)
	return env
}

func testMetadata(prompt string) *domain.TokenMetadata {
	return &domain.TokenMetadata{
		Name:        "AI-Muse #7",
		Description: prompt,
		Image:       "https://picsum.photos/seed/424242/512/512",
		Attributes: []domain.Attribute{
			{TraitType: "Prompt", Value: prompt},
		},
	}
}

func TestMint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmTest", nil)
	env.chain.EXPECT().Mint(ctx, "ipfs://QmTest", env.conn).
		Return(&domain.MintResult{TokenID: 7, TxHash: "0xabc"}, nil)

	env.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NFTEvent) error {
			assert.Equal(t, domain.EventTypeMinted, event.Type)
			assert.NotEmpty(t, event.FlowID)
			assert.Equal(t, int64(7), event.TokenID)
			assert.Equal(t, domain.NormalizeAddress(testOwner), event.Owner)
			assert.Equal(t, "0xabc", event.TxHash)
			return nil
		})

	env.store.EXPECT().CreateNFT(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, nft *schema.NFT) error {
			assert.Equal(t, int64(7), nft.TokenID)
			assert.Equal(t, testOwner, nft.Owner)
			assert.Equal(t, "a cat", nft.Prompt)
			assert.Equal(t, "ipfs://QmTest", nft.TokenURI)
			assert.Equal(t, metadata.Image, nft.Image)
			assert.Equal(t, metadata.Name, nft.Name)
			assert.Equal(t, "a cat", nft.Description)
			assert.Equal(t, "0xabc", nft.TransactionHash)

			var attrs []domain.Attribute
			require.NoError(t, json.Unmarshal(nft.Attributes, &attrs))
			assert.Equal(t, metadata.Attributes, attrs)
			return nil
		})

	result, err := env.o.Mint(ctx, env.conn, "a cat")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(7), result.TokenID)
	assert.Equal(t, "0xabc", result.TxHash)
	assert.Equal(t, "ipfs://QmTest", result.TokenURI)
	assert.NotEmpty(t, result.FlowID)
}

func TestMintGeneratorFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.generator.EXPECT().Generate(ctx, "a cat").
		Return(nil, fmt.Errorf("generator unavailable"))

	// No chain or store calls: the mock controller enforces Times(0)
	result, err := env.o.Mint(ctx, env.conn, "a cat")
	assert.Nil(t, result)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StageGeneratingMetadata, flowErr.Stage)
}

func TestMintUploadFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("", fmt.Errorf("pin failed"))

	result, err := env.o.Mint(ctx, env.conn, "a cat")
	assert.Nil(t, result)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StageUploadingContent, flowErr.Stage)
}

func TestMintChainFailureCreatesNoRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmTest", nil)
	env.chain.EXPECT().Mint(ctx, "ipfs://QmTest", env.conn).
		Return(nil, domain.ErrUserRejected)
	env.store.EXPECT().CreateNFT(gomock.Any(), gomock.Any()).Times(0)
	env.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Times(0)

	result, err := env.o.Mint(ctx, env.conn, "a cat")
	assert.Nil(t, result)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StageSubmittingChainTx, flowErr.Stage)
	assert.ErrorIs(t, err, domain.ErrUserRejected)
}

func TestMintPersistenceFailureReturnsResult(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmTest", nil)
	env.chain.EXPECT().Mint(ctx, "ipfs://QmTest", env.conn).
		Return(&domain.MintResult{TokenID: 7, TxHash: "0xabc"}, nil)
	env.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)
	env.store.EXPECT().CreateNFT(ctx, gomock.Any()).
		Return(fmt.Errorf("database unavailable"))

	result, err := env.o.Mint(ctx, env.conn, "a cat")

	// Minted on-chain: the result survives so persistence can be retried
	require.NotNil(t, result)
	assert.Equal(t, int64(7), result.TokenID)
	assert.Equal(t, "0xabc", result.TxHash)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StagePersistingRecord, flowErr.Stage)

	// Retry just the persistence step with the returned result
	env.store.EXPECT().CreateNFT(ctx, gomock.Any()).Return(nil)
	assert.NoError(t, env.o.PersistRecord(ctx, env.conn, result))
}

func TestMintPublishFailureDoesNotFailFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmTest", nil)
	env.chain.EXPECT().Mint(ctx, "ipfs://QmTest", env.conn).
		Return(&domain.MintResult{TokenID: 7, TxHash: "0xabc"}, nil)
	env.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).
		Return(fmt.Errorf("broker down"))
	env.store.EXPECT().CreateNFT(ctx, gomock.Any()).Return(nil)

	result, err := env.o.Mint(ctx, env.conn, "a cat")
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.TokenID)
}

func TestMintWithoutPublisher(t *testing.T) {
	env := newTestEnv(t)
	env.o.publisher = nil
	ctx := context.Background()
	metadata := testMetadata("a cat")

	env.generator.EXPECT().Generate(ctx, "a cat").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmTest", nil)
	env.chain.EXPECT().Mint(ctx, "ipfs://QmTest", env.conn).
		Return(&domain.MintResult{TokenID: 7, TxHash: "0xabc"}, nil)
	env.store.EXPECT().CreateNFT(ctx, gomock.Any()).Return(nil)

	_, err := env.o.Mint(ctx, env.conn, "a cat")
	require.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a dog")

	env.generator.EXPECT().Generate(ctx, "a dog").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmUpdated", nil)
	env.chain.EXPECT().UpdateMetadata(ctx, int64(7), "ipfs://QmUpdated", env.conn).
		Return("0xdef", nil)

	env.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.NFTEvent) error {
			assert.Equal(t, domain.EventTypeUpdated, event.Type)
			assert.Equal(t, int64(7), event.TokenID)
			assert.Equal(t, "0xdef", event.TxHash)
			return nil
		})

	env.store.EXPECT().UpdateNFT(ctx, int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, updates store.NFTUpdate) error {
			require.NotNil(t, updates.Prompt)
			assert.Equal(t, "a dog", *updates.Prompt)
			require.NotNil(t, updates.TokenURI)
			assert.Equal(t, "ipfs://QmUpdated", *updates.TokenURI)
			require.NotNil(t, updates.TransactionHash)
			assert.Equal(t, "0xdef", *updates.TransactionHash)
			assert.Nil(t, updates.Owner)
			return nil
		})

	result, err := env.o.Update(ctx, env.conn, 7, "a dog")
	require.NoError(t, err)
	assert.Equal(t, "0xdef", result.TxHash)
	assert.Equal(t, "ipfs://QmUpdated", result.TokenURI)
}

func TestUpdateChainFailureTouchesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a dog")

	env.generator.EXPECT().Generate(ctx, "a dog").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmUpdated", nil)
	env.chain.EXPECT().UpdateMetadata(ctx, int64(7), "ipfs://QmUpdated", env.conn).
		Return("", domain.ErrNetworkMismatch)
	env.store.EXPECT().UpdateNFT(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := env.o.Update(ctx, env.conn, 7, "a dog")
	assert.Nil(t, result)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StageSubmittingChainTx, flowErr.Stage)
	assert.ErrorIs(t, err, domain.ErrNetworkMismatch)
}

func TestUpdateMirrorMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	metadata := testMetadata("a dog")

	env.generator.EXPECT().Generate(ctx, "a dog").Return(metadata, nil)
	env.content.EXPECT().Upload(ctx, metadata).Return("ipfs://QmUpdated", nil)
	env.chain.EXPECT().UpdateMetadata(ctx, int64(7), "ipfs://QmUpdated", env.conn).
		Return("0xdef", nil)
	env.publisher.EXPECT().PublishEvent(ctx, gomock.Any()).Return(nil)
	env.store.EXPECT().UpdateNFT(ctx, int64(7), gomock.Any()).
		Return(domain.ErrTokenNotFound)

	result, err := env.o.Update(ctx, env.conn, 7, "a dog")

	// On-chain update happened; caller keeps the result
	require.NotNil(t, result)
	assert.Equal(t, "0xdef", result.TxHash)

	var flowErr *FlowError
	require.ErrorAs(t, err, &flowErr)
	assert.Equal(t, StagePersistingRecord, flowErr.Stage)
	assert.True(t, errors.Is(err, domain.ErrTokenNotFound))
}

func TestFlowError(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := &FlowError{Stage: StageSubmittingChainTx, Err: inner}

	assert.Contains(t, err.Error(), "submitting_chain_tx")
	assert.ErrorIs(t, err, inner)
}
