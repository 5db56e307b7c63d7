package wallet

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/lokeshwaran100/ai-muse/internal/logger"
)

// Manager tracks the live wallet connection and re-derives it whenever the
// provider reports an account or chain change. Callers always read the
// current connection through Current; a stale copy held across a change
// event simply fails its next network check.
type Manager struct {
	mu   sync.RWMutex
	conn Connection
}

// NewManager creates a manager seeded with an initial connection
func NewManager(conn Connection) *Manager {
	return &Manager{conn: conn}
}

// Current returns a copy of the active connection
func (m *Manager) Current() Connection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conn
}

// Run consumes provider change events until ctx is done, updating the
// active connection in place. Blocks; run in its own goroutine.
func (m *Manager) Run(ctx context.Context) error {
	provider := m.Current().Provider
	events, err := provider.SubscribeChanges(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			m.apply(ctx, event)
		}
	}
}

func (m *Manager) apply(ctx context.Context, event ChangeEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if event.Address != "" {
		m.conn.Address = common.HexToAddress(event.Address)
	}
	if event.ChainID != 0 {
		m.conn.ChainID = event.ChainID
	}

	logger.InfoCtx(ctx, "wallet connection changed",
		zap.String("address", m.conn.Address.Hex()),
		zap.Uint64("chainID", m.conn.ChainID),
	)
}
