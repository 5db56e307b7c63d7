package schema

import (
	"time"

	"gorm.io/datatypes"
)

// NFT represents the nfts table - the off-chain mirror of a minted token.
// The chain is the source of truth for existence; a row is only ever written
// after the corresponding transaction confirmed, and rows are never deleted.
type NFT struct {
	// TokenID is assigned by the contract at mint time and never reassigned
	TokenID int64 `gorm:"column:token_id;primaryKey;autoIncrement:false"`
	// Owner is the minting wallet address, stored lowercased
	Owner string `gorm:"column:owner;not null;type:text;index:idx_nfts_owner_created_at,priority:1"`
	// Prompt is the user-supplied text the metadata was generated from
	Prompt string `gorm:"column:prompt;not null;type:text"`
	// TokenURI points at the metadata document in the content store
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// Image, Name and Description are denormalized from the metadata document
	// so listings render without re-fetching the URI
	Image       string `gorm:"column:image;not null;type:text"`
	Name        string `gorm:"column:name;not null;type:text"`
	Description string `gorm:"column:description;not null;type:text"`
	// Attributes holds the full attribute list from the metadata document
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb"`
	// TransactionHash is the most recent mint or update transaction
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
	// CreatedAt is set once at first save
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_nfts_owner_created_at,priority:2,sort:desc"`
	// UpdatedAt is stamped at creation and on every update
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
