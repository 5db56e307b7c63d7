package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// The gorm connection must be opened with TranslateError enabled so unique
// violations surface as gorm.ErrDuplicatedKey.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
// database/sql treats MaxOpenConns=0 as "unlimited" and MaxIdleConns=0 as
// "no idle connections", so zero values get explicit defaults instead.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetNFTsByOwner retrieves all records for an owner, newest first by creation time
func (s *pgStore) GetNFTsByOwner(ctx context.Context, owner string) ([]*schema.NFT, error) {
	var nfts []*schema.NFT
	err := s.db.WithContext(ctx).
		Where("owner = ?", domain.NormalizeAddress(owner)).
		Order("created_at DESC").
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get nfts by owner: %w", err)
	}

	return nfts, nil
}

// GetNFTByTokenID retrieves a record by token id, or nil when absent
func (s *pgStore) GetNFTByTokenID(ctx context.Context, tokenID int64) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}

	return &nft, nil
}

// CreateNFT inserts a new mirror record, normalizing the owner and stamping
// both timestamps server-side
func (s *pgStore) CreateNFT(ctx context.Context, nft *schema.NFT) error {
	now := time.Now()
	nft.Owner = domain.NormalizeAddress(nft.Owner)
	nft.CreatedAt = now
	nft.UpdatedAt = now

	err := s.db.WithContext(ctx).Create(nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("token id %d: %w", nft.TokenID, domain.ErrTokenAlreadyExists)
		}
		return fmt.Errorf("failed to create nft: %w", err)
	}

	return nil
}

// UpdateNFT merges the given fields into an existing record and stamps updated_at
func (s *pgStore) UpdateNFT(ctx context.Context, tokenID int64, update NFTUpdate) error {
	columns := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if update.Owner != nil {
		columns["owner"] = domain.NormalizeAddress(*update.Owner)
	}
	if update.Prompt != nil {
		columns["prompt"] = *update.Prompt
	}
	if update.TokenURI != nil {
		columns["token_uri"] = *update.TokenURI
	}
	if update.Image != nil {
		columns["image"] = *update.Image
	}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Description != nil {
		columns["description"] = *update.Description
	}
	if update.Attributes != nil {
		columns["attributes"] = update.Attributes
	}
	if update.TransactionHash != nil {
		columns["transaction_hash"] = *update.TransactionHash
	}

	result := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("token_id = ?", tokenID).
		Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update nft: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("token id %d: %w", tokenID, domain.ErrTokenNotFound)
	}

	return nil
}
