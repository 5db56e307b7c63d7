package orchestrator

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/generator"
	"github.com/lokeshwaran100/ai-muse/internal/logger"
	"github.com/lokeshwaran100/ai-muse/internal/messaging"
	"github.com/lokeshwaran100/ai-muse/internal/providers/ethereum"
	"github.com/lokeshwaran100/ai-muse/internal/store"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
	"github.com/lokeshwaran100/ai-muse/internal/wallet"
)

// Stage identifies where a mint or update flow currently is, and where it
// failed when it did
type Stage string

const (
	StageIdle               Stage = "idle"
	StageGeneratingMetadata Stage = "generating_metadata"
	StageUploadingContent   Stage = "uploading_content"
	StageSubmittingChainTx  Stage = "submitting_chain_tx"
	StagePersistingRecord   Stage = "persisting_record"
	StageDone               Stage = "done"
)

// FlowError wraps a failure with the stage it occurred in. Completed stages
// are never rolled back; the stage tells the caller which side effects
// already happened.
type FlowError struct {
	Stage Stage
	Err   error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("flow failed at %s: %v", e.Stage, e.Err)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// Result carries everything a flow produced. On a persistence failure it is
// returned alongside the error so the caller can retry PersistRecord without
// re-minting.
type Result struct {
	FlowID   string
	TokenID  int64
	TxHash   string
	TokenURI string
	Prompt   string
	Metadata *domain.TokenMetadata
}

// Orchestrator sequences the metadata generator, content store, chain client
// and record store for mint and update flows. The three backends share no
// transaction: ordering is the only guarantee, and a confirmed chain write
// with a failed mirror write is a distinct, recoverable outcome.
type Orchestrator struct {
	generator generator.Generator
	content   generator.ContentStore
	chain     ethereum.ChainClient
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
}

// New creates an orchestrator. publisher may be nil to disable lifecycle
// events.
func New(
	gen generator.Generator,
	content generator.ContentStore,
	chain ethereum.ChainClient,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) *Orchestrator {
	return &Orchestrator{
		generator: gen,
		content:   content,
		chain:     chain,
		store:     st,
		publisher: publisher,
		clock:     clock,
		json:      adapter.NewJSON(),
	}
}

// Mint runs the full mint flow: generate metadata, pin it, mint on-chain,
// then mirror the record. A failure before the chain write discards all
// pending work. A failure after the chain write returns the populated Result
// with a FlowError at StagePersistingRecord; only PersistRecord needs to be
// retried.
func (o *Orchestrator) Mint(ctx context.Context, conn *wallet.Connection, prompt string) (*Result, error) {
	result := &Result{
		FlowID: ulid.MustNewDefault(o.clock.Now()).String(),
		Prompt: prompt,
	}
	log := logger.FromContext(ctx).With(zap.String("flowID", result.FlowID))
	log.Info("starting mint flow", zap.String("prompt", prompt))

	if err := o.prepareContent(ctx, result); err != nil {
		return nil, err
	}

	mintResult, err := o.chain.Mint(ctx, result.TokenURI, conn)
	if err != nil {
		return nil, &FlowError{Stage: StageSubmittingChainTx, Err: err}
	}
	result.TokenID = mintResult.TokenID
	result.TxHash = mintResult.TxHash

	o.publish(ctx, domain.EventTypeMinted, conn, result)

	if err := o.PersistRecord(ctx, conn, result); err != nil {
		log.Warn("minted on-chain but mirror write failed",
			zap.Int64("tokenID", result.TokenID), zap.Error(err))
		return result, &FlowError{Stage: StagePersistingRecord, Err: err}
	}

	log.Info("mint flow done", zap.Int64("tokenID", result.TokenID))
	return result, nil
}

// Update regenerates metadata for a prompt, pins it, points the token at the
// new URI on-chain, then merges the changed fields into the mirror record.
// Same partial-failure shape as Mint.
func (o *Orchestrator) Update(ctx context.Context, conn *wallet.Connection, tokenID int64, prompt string) (*Result, error) {
	result := &Result{
		FlowID:  ulid.MustNewDefault(o.clock.Now()).String(),
		TokenID: tokenID,
		Prompt:  prompt,
	}
	log := logger.FromContext(ctx).With(zap.String("flowID", result.FlowID))
	log.Info("starting update flow", zap.Int64("tokenID", tokenID))

	if err := o.prepareContent(ctx, result); err != nil {
		return nil, err
	}

	txHash, err := o.chain.UpdateMetadata(ctx, tokenID, result.TokenURI, conn)
	if err != nil {
		return nil, &FlowError{Stage: StageSubmittingChainTx, Err: err}
	}
	result.TxHash = txHash

	o.publish(ctx, domain.EventTypeUpdated, conn, result)

	if err := o.applyUpdate(ctx, result); err != nil {
		log.Warn("updated on-chain but mirror write failed",
			zap.Int64("tokenID", tokenID), zap.Error(err))
		return result, &FlowError{Stage: StagePersistingRecord, Err: err}
	}

	log.Info("update flow done", zap.Int64("tokenID", tokenID))
	return result, nil
}

// PersistRecord writes the mirror record for a confirmed mint. Exported so a
// caller holding a Result from a persistence failure can retry just this
// step.
func (o *Orchestrator) PersistRecord(ctx context.Context, conn *wallet.Connection, result *Result) error {
	attributes, err := o.json.Marshal(result.Metadata.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	return o.store.CreateNFT(ctx, &schema.NFT{
		TokenID:         result.TokenID,
		Owner:           conn.Address.Hex(),
		Prompt:          result.Prompt,
		TokenURI:        result.TokenURI,
		Image:           result.Metadata.Image,
		Name:            result.Metadata.Name,
		Description:     result.Metadata.Description,
		Attributes:      attributes,
		TransactionHash: result.TxHash,
	})
}

// prepareContent runs the generate and upload stages into result
func (o *Orchestrator) prepareContent(ctx context.Context, result *Result) error {
	metadata, err := o.generator.Generate(ctx, result.Prompt)
	if err != nil {
		return &FlowError{Stage: StageGeneratingMetadata, Err: err}
	}
	result.Metadata = metadata

	tokenURI, err := o.content.Upload(ctx, metadata)
	if err != nil {
		return &FlowError{Stage: StageUploadingContent, Err: err}
	}
	result.TokenURI = tokenURI
	return nil
}

func (o *Orchestrator) applyUpdate(ctx context.Context, result *Result) error {
	attributes, err := o.json.Marshal(result.Metadata.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	return o.store.UpdateNFT(ctx, result.TokenID, store.NFTUpdate{
		Prompt:          &result.Prompt,
		TokenURI:        &result.TokenURI,
		Image:           &result.Metadata.Image,
		Name:            &result.Metadata.Name,
		Description:     &result.Metadata.Description,
		Attributes:      attributes,
		TransactionHash: &result.TxHash,
	})
}

// publish emits a lifecycle event, best effort: a broker failure is logged
// and never fails the flow
func (o *Orchestrator) publish(ctx context.Context, eventType domain.NFTEventType, conn *wallet.Connection, result *Result) {
	if o.publisher == nil {
		return
	}

	event := &domain.NFTEvent{
		Type:      eventType,
		FlowID:    result.FlowID,
		TokenID:   result.TokenID,
		Owner:     domain.NormalizeAddress(conn.Address.Hex()),
		TokenURI:  result.TokenURI,
		TxHash:    result.TxHash,
		Timestamp: o.clock.Now().UTC(),
	}

	if err := o.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish lifecycle event",
			zap.String("flowID", result.FlowID),
			zap.String("eventType", string(eventType)),
			zap.Error(err))
	}
}
