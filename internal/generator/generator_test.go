package generator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/config"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
	"github.com/lokeshwaran100/ai-muse/internal/mocks"
)

func testGenerator(t *testing.T, randValues ...int) Generator {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().
		Return(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)).
		AnyTimes()

	g := New(config.GeneratorConfig{
		ImageBaseURL: "https://picsum.photos",
		ImageSize:    512,
	}, clock).(*placeholderGenerator)

	// Deterministic image seed and edition number for assertions
	calls := 0
	g.randInt = func(n int) int {
		v := randValues[calls%len(randValues)]
		calls++
		return v % n
	}
	return g
}

func TestGenerate(t *testing.T) {
	g := testGenerator(t, 424242, 7)

	metadata, err := g.Generate(context.Background(), "a cat astronaut")
	require.NoError(t, err)
	require.NotNil(t, metadata)

	assert.Equal(t, "AI-Muse #7", metadata.Name)
	assert.Equal(t, "a cat astronaut", metadata.Description)
	assert.Equal(t, "https://picsum.photos/seed/424242/512/512", metadata.Image)

	require.Len(t, metadata.Attributes, 3)
	assert.Equal(t, domain.Attribute{TraitType: "Created with", Value: "AI-Muse"}, metadata.Attributes[0])
	assert.Equal(t, domain.Attribute{TraitType: "Prompt", Value: "a cat astronaut"}, metadata.Attributes[1])
	assert.Equal(t, "Timestamp", metadata.Attributes[2].TraitType)
	assert.Equal(t, "2026-03-14T09:26:53Z", metadata.Attributes[2].Value)
}

func TestGenerateBlankPrompt(t *testing.T) {
	g := testGenerator(t, 1)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		metadata, err := g.Generate(context.Background(), prompt)
		assert.Error(t, err)
		assert.Nil(t, metadata)
	}
}

func TestUpload(t *testing.T) {
	store := NewContentStore(adapter.NewJSON())

	metadata := &domain.TokenMetadata{
		Name:        "AI-Muse #7",
		Description: "a cat astronaut",
		Image:       "https://picsum.photos/seed/424242/512/512",
		Attributes: []domain.Attribute{
			{TraitType: "Prompt", Value: "a cat astronaut"},
		},
	}

	uri, err := store.Upload(context.Background(), metadata)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uri, "ipfs://Qm"))
	assert.Len(t, uri, len("ipfs://Qm")+44)
	for _, c := range strings.TrimPrefix(uri, "ipfs://") {
		assert.NotContains(t, "0OIl", string(c))
	}
}

func TestUploadIsDeterministic(t *testing.T) {
	store := NewContentStore(adapter.NewJSON())
	ctx := context.Background()

	metadata := &domain.TokenMetadata{Name: "AI-Muse #1", Description: "a cat"}

	first, err := store.Upload(ctx, metadata)
	require.NoError(t, err)
	second, err := store.Upload(ctx, metadata)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := store.Upload(ctx, &domain.TokenMetadata{Name: "AI-Muse #1", Description: "a dog"})
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestUploadNilMetadata(t *testing.T) {
	store := NewContentStore(adapter.NewJSON())

	uri, err := store.Upload(context.Background(), nil)
	assert.Error(t, err)
	assert.Empty(t, uri)
}
