package messaging

import (
	"context"

	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// Publisher defines the interface for publishing NFT lifecycle events to a
// message broker. Publishing is best effort from the orchestrator's view: a
// failed publish never fails a flow.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a lifecycle event to the message broker
	PublishEvent(ctx context.Context, event *domain.NFTEvent) error
	// Close closes the connection
	Close()
}
