package generator

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// base58 alphabet used for CIDv0-shaped identifiers
const cidAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const cidBodyLength = 44

// ContentStore pins a metadata document and returns its token URI. The
// in-memory implementation derives a stable content-addressed identifier
// from the canonicalized document, so pinning the same metadata twice
// yields the same URI.
//
//go:generate mockgen -source=contentstore.go -destination=../mocks/contentstore.go -package=mocks -mock_names=ContentStore=MockContentStore
type ContentStore interface {
	Upload(ctx context.Context, metadata *domain.TokenMetadata) (string, error)
}

type fakeIPFSStore struct {
	json adapter.JSON
}

// NewContentStore creates a content store that mimics IPFS pinning without
// any network dependency
func NewContentStore(json adapter.JSON) ContentStore {
	return &fakeIPFSStore{json: json}
}

// Upload canonicalizes the metadata document and returns an ipfs:// URI
// whose CID is derived from the content hash
func (s *fakeIPFSStore) Upload(_ context.Context, metadata *domain.TokenMetadata) (string, error) {
	if metadata == nil {
		return "", fmt.Errorf("metadata is required")
	}

	raw, err := s.json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	// JCS canonicalization keeps the hash independent of key ordering
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}

	return fmt.Sprintf("ipfs://Qm%s", cidBody(canonical)), nil
}

// cidBody maps the content hash onto the base58 alphabet. The digest is
// extended by rehashing so the body reaches CIDv0 length.
func cidBody(canonical []byte) string {
	digest := sha256.Sum256(canonical)
	second := sha256.Sum256(digest[:])
	material := append(digest[:], second[:]...)

	body := make([]byte, cidBodyLength)
	for i := 0; i < cidBodyLength; i++ {
		body[i] = cidAlphabet[int(material[i])%len(cidAlphabet)]
	}
	return string(body)
}
