package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/mocks"
)

func testEvent() *domain.NFTEvent {
	return &domain.NFTEvent{
		Type:      domain.EventTypeMinted,
		FlowID:    "01J5XGJ9K2T4Q8W3N7V6B1C9D0",
		TokenID:   7,
		Owner:     "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266",
		TokenURI:  "ipfs://QmTest",
		TxHash:    "0xabc",
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func testPublisher(t *testing.T, ctrl *gomock.Controller) (messagingPublisher *publisher, js *mocks.MockJetStream) {
	t.Helper()

	js = mocks.NewMockJetStream(ctrl)
	return &publisher{
		js:         js,
		streamName: "NFT_EVENTS",
		json:       adapter.NewJSON(),
	}, js
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, js := testPublisher(t, ctrl)
	event := testEvent()

	js.EXPECT().
		Publish(gomock.Any(), "nft.minted", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjetstream.PublishOpt) (*natsjetstream.PubAck, error) {
			var got domain.NFTEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, *event, got)
			return &natsjetstream.PubAck{}, nil
		})

	require.NoError(t, p.PublishEvent(context.Background(), event))
}

func TestPublishEventSubjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, js := testPublisher(t, ctrl)

	gomock.InOrder(
		js.EXPECT().Publish(gomock.Any(), "nft.minted", gomock.Any()).Return(&natsjetstream.PubAck{}, nil),
		js.EXPECT().Publish(gomock.Any(), "nft.updated", gomock.Any()).Return(&natsjetstream.PubAck{}, nil),
	)

	minted := testEvent()
	require.NoError(t, p.PublishEvent(context.Background(), minted))

	updated := testEvent()
	updated.Type = domain.EventTypeUpdated
	require.NoError(t, p.PublishEvent(context.Background(), updated))
}

func TestPublishEventBrokerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, js := testPublisher(t, ctrl)

	js.EXPECT().Publish(gomock.Any(), "nft.minted", gomock.Any()).
		Return(nil, fmt.Errorf("stream not found"))

	err := p.PublishEvent(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestCloseNilConn(t *testing.T) {
	p := &publisher{}
	assert.NotPanics(t, p.Close)
}
