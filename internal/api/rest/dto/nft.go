package dto

import (
	"encoding/json"
	"time"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/store/schema"
)

// GenerateMetadataRequest is the body of POST /api/v1/metadata
type GenerateMetadataRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateMetadataResponse pairs the generated document with its pinned URI
type GenerateMetadataResponse struct {
	TokenURI string                `json:"tokenURI"`
	Metadata *domain.TokenMetadata `json:"metadata"`
}

// CreateNFTRequest is the body of POST /api/v1/nfts. All fields except
// attributes are required; timestamps are server-assigned.
type CreateNFTRequest struct {
	TokenID         *int64             `json:"tokenId"`
	Owner           string             `json:"owner"`
	Prompt          string             `json:"prompt"`
	TokenURI        string             `json:"tokenURI"`
	Image           string             `json:"image"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Attributes      []domain.Attribute `json:"attributes"`
	TransactionHash string             `json:"transactionHash"`
}

// FirstMissingField returns the name of the first required field that is
// absent, in the documented validation order, or "" when all are present
func (r *CreateNFTRequest) FirstMissingField() string {
	switch {
	case r.TokenID == nil:
		return "tokenId"
	case r.Owner == "":
		return "owner"
	case r.Prompt == "":
		return "prompt"
	case r.TokenURI == "":
		return "tokenURI"
	case r.Image == "":
		return "image"
	case r.Name == "":
		return "name"
	case r.Description == "":
		return "description"
	case r.TransactionHash == "":
		return "transactionHash"
	}
	return ""
}

// UpdateNFTRequest is the body of PUT /api/v1/nfts/:token_id. Only the
// fields present are merged into the record.
type UpdateNFTRequest struct {
	Owner           *string            `json:"owner"`
	Prompt          *string            `json:"prompt"`
	TokenURI        *string            `json:"tokenURI"`
	Image           *string            `json:"image"`
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	Attributes      []domain.Attribute `json:"attributes"`
	TransactionHash *string            `json:"transactionHash"`
}

// NFT is the wire representation of a mirror record
type NFT struct {
	TokenID         int64              `json:"tokenId"`
	Owner           string             `json:"owner"`
	Prompt          string             `json:"prompt"`
	TokenURI        string             `json:"tokenURI"`
	Image           string             `json:"image"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Attributes      []domain.Attribute `json:"attributes"`
	TransactionHash string             `json:"transactionHash"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// FromSchema maps a stored record to its wire representation
func FromSchema(nft *schema.NFT) NFT {
	var attributes []domain.Attribute
	if len(nft.Attributes) > 0 {
		// Attributes were validated on the way in; a decode failure here
		// leaves them empty rather than failing the read
		_ = json.Unmarshal(nft.Attributes, &attributes)
	}

	return NFT{
		TokenID:         nft.TokenID,
		Owner:           nft.Owner,
		Prompt:          nft.Prompt,
		TokenURI:        nft.TokenURI,
		Image:           nft.Image,
		Name:            nft.Name,
		Description:     nft.Description,
		Attributes:      attributes,
		TransactionHash: nft.TransactionHash,
		CreatedAt:       nft.CreatedAt,
		UpdatedAt:       nft.UpdatedAt,
	}
}

// FromSchemaList maps stored records preserving order
func FromSchemaList(nfts []*schema.NFT) []NFT {
	out := make([]NFT, 0, len(nfts))
	for _, nft := range nfts {
		out = append(out, FromSchema(nft))
	}
	return out
}

// OnchainNFTResponse is the body of GET /api/v1/nfts/:token_id/onchain
type OnchainNFTResponse struct {
	TokenID  int64  `json:"tokenId"`
	Owner    string `json:"owner"`
	TokenURI string `json:"tokenURI"`
}
