package llm

import (
	"context"
	"fmt"

	"github.com/finlingo/finlingo/internal/store"
)

// NewProviderFromEnv builds a Provider from FINLINGO_* environment
// variables, falling back to probing the standard provider API key
// variables when no explicit configuration is present.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
