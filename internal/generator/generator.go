package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/lokeshwaran100/ai-muse/internal/adapter"
	"github.com/lokeshwaran100/ai-muse/internal/config"
	"github.com/lokeshwaran100/ai-muse/internal/domain"
)

// Generator produces placeholder artwork metadata for a prompt. The image is
// a seeded placeholder URL; the metadata mirrors what a model-backed
// generator would return so callers never special-case the placeholder path.
//
//go:generate mockgen -source=generator.go -destination=../mocks/generator.go -package=mocks -mock_names=Generator=MockGenerator
type Generator interface {
	Generate(ctx context.Context, prompt string) (*domain.TokenMetadata, error)
}

type placeholderGenerator struct {
	baseURL string
	size    int
	clock   adapter.Clock
	randInt func(n int) int
}

// New creates a placeholder generator backed by a public image service
func New(cfg config.GeneratorConfig, clock adapter.Clock) Generator {
	return &placeholderGenerator{
		baseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		size:    cfg.ImageSize,
		clock:   clock,
		randInt: rand.Intn,
	}
}

// Generate builds the token metadata document for a prompt. The image is
// seeded randomly so repeated prompts yield distinct artwork.
func (g *placeholderGenerator) Generate(_ context.Context, prompt string) (*domain.TokenMetadata, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	seed := g.randInt(1000000)
	imageURL := fmt.Sprintf("%s/seed/%d/%d/%d", g.baseURL, seed, g.size, g.size)

	return &domain.TokenMetadata{
		Name:        fmt.Sprintf("AI-Muse #%d", g.randInt(10000)),
		Description: prompt,
		Image:       imageURL,
		Attributes: []domain.Attribute{
			{TraitType: "Created with", Value: "AI-Muse"},
			{TraitType: "Prompt", Value: prompt},
			{TraitType: "Timestamp", Value: g.clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00")},
		},
	}, nil
}
