package store

import (
	"context"

	"gorm.io/datatypes"

	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
)

// NFTUpdate carries the fields an update flow may merge into an existing
// record. Nil fields are left untouched.
type NFTUpdate struct {
	Owner           *string
	Prompt          *string
	TokenURI        *string
	Image           *string
	Name            *string
	Description     *string
	Attributes      datatypes.JSON
	TransactionHash *string
}

// Store defines the interface for record store operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetNFTsByOwner retrieves all records for an owner, newest first by creation time
	GetNFTsByOwner(ctx context.Context, owner string) ([]*schema.NFT, error)
	// GetNFTByTokenID retrieves a record by token id, or nil when absent
	GetNFTByTokenID(ctx context.Context, tokenID int64) (*schema.NFT, error)
	// CreateNFT inserts a new mirror record. The owner is normalized and both
	// timestamps are stamped server-side. A duplicate token id fails with
	// domain.ErrTokenAlreadyExists and leaves the existing record unchanged.
	CreateNFT(ctx context.Context, nft *schema.NFT) error
	// UpdateNFT merges the given fields into an existing record and stamps
	// updated_at. Fails with domain.ErrTokenNotFound when no record exists.
	UpdateNFT(ctx context.Context, tokenID int64, update NFTUpdate) error
}
