package coach

// Config holds study-note generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for note generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.6,
	}
}
