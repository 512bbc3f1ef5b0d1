package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the game-balance tunables. Values live in a yaml file so
// designers can retune the economy without a rebuild; defaults match the
// deployed contract configuration.
type Balance struct {
	// UpgradeStepSeconds is the flat time-lock increment charged per level.
	UpgradeStepSeconds int64 `yaml:"upgrade_step_seconds"`

	// RatePercentPerLevel is the compounding mining-rate increase per level.
	RatePercentPerLevel uint8 `yaml:"rate_percent_per_level"`

	// CurrencySymbol and CurrencyPrecision describe the swap payout token.
	CurrencySymbol    string `yaml:"currency_symbol"`
	CurrencyPrecision uint8  `yaml:"currency_precision"`

	// RejectDuplicateStake rejects staking an identifier that is already in
	// the farming item's staked set. The original contract appends without a
	// dedup check; this stays off by default to preserve that behavior.
	RejectDuplicateStake bool `yaml:"reject_duplicate_stake"`

	// TemplateCacheSize bounds the LRU cache of immutable template data.
	TemplateCacheSize int `yaml:"template_cache_size"`
}

// DefaultBalance returns the reference configuration.
func DefaultBalance() Balance {
	return Balance{
		UpgradeStepSeconds:   320, // 5.33 min
		RatePercentPerLevel:  2,
		CurrencySymbol:       "GAME",
		CurrencyPrecision:    4,
		RejectDuplicateStake: false,
		TemplateCacheSize:    512,
	}
}

// LoadBalance reads the balance file, falling back to defaults for fields
// the file omits. A missing file is not an error: defaults apply.
func LoadBalance(path string) (Balance, error) {
	balance := DefaultBalance()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return balance, nil
		}
		return balance, fmt.Errorf("failed to read balance file: %w", err)
	}

	if err := yaml.Unmarshal(data, &balance); err != nil {
		return balance, fmt.Errorf("failed to parse balance file: %w", err)
	}

	if err := balance.Validate(); err != nil {
		return balance, err
	}
	return balance, nil
}

// Validate rejects values that would break the cost curve or payouts.
func (b Balance) Validate() error {
	if b.UpgradeStepSeconds <= 0 {
		return fmt.Errorf("upgrade_step_seconds must be positive, got %d", b.UpgradeStepSeconds)
	}
	if b.CurrencySymbol == "" {
		return fmt.Errorf("currency_symbol must be set")
	}
	if b.TemplateCacheSize <= 0 {
		return fmt.Errorf("template_cache_size must be positive, got %d", b.TemplateCacheSize)
	}
	return nil
}
