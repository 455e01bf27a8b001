package engine

import (
	"encoding/json"
	"os"
)

// Config carries the tunable search options. It round-trips through a JSON
// file so choices made over the protocol survive restarts.
type Config struct {
	// UseBandit selects the UCB1 bandit search instead of the softmax tree
	// search (the protocol's "MAB" option).
	UseBandit bool `json:"useBandit"`
	// MaxDepth bounds iterative deepening when no time budget is given.
	MaxDepth int `json:"maxDepth"`
	// Iterations is the per-node simulation count of the bandit search.
	Iterations int `json:"iterations"`
}

// DefaultConfig mirrors the engine's built-in settings.
func DefaultConfig() Config {
	return Config{UseBandit: false, MaxDepth: 25, Iterations: 100}
}

// sanitized clamps out-of-range values back to something searchable.
func (c Config) sanitized() Config {
	c.MaxDepth = Clamp(c.MaxDepth, 1, 100)
	c.Iterations = Clamp(c.Iterations, 1, 100000)
	return c
}

// LoadConfig reads a Config from path, falling back to defaults when the
// file is absent or unreadable.
func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg.sanitized()
}

// Save writes the Config to path.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
