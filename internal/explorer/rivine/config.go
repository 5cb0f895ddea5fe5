package rivine

import (
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/tfexplorer-parser/internal/explorer/model"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrecision is the number of decimal digits of one coin.
	DefaultPrecision = 9
	// DefaultCustodyVoidAddress receives custody fees and can never spend them.
	DefaultCustodyVoidAddress = "800000000000000000000000000000000000000000000000000000000000000000af7bedde1fea"

	maxPrecision = 36
)

// Config controls how amounts are scaled and which address is the custody void.
type Config struct {
	Network             model.Network `yaml:"network"`
	Precision           uint          `yaml:"precision"`
	BlockstakePrecision uint          `yaml:"blockstake_precision"`
	CustodyVoidAddress  string        `yaml:"custody_void_address"`
}

// DefaultConfig returns the configuration of the standard network.
func DefaultConfig() Config {
	return Config{
		Network:            model.Standard,
		Precision:          DefaultPrecision,
		CustodyVoidAddress: DefaultCustodyVoidAddress,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Precision > maxPrecision {
		return fmt.Errorf("precision %d exceeds %d", c.Precision, maxPrecision)
	}
	if c.BlockstakePrecision > maxPrecision {
		return fmt.Errorf("blockstake precision %d exceeds %d", c.BlockstakePrecision, maxPrecision)
	}
	if c.Network == "" {
		return errors.New("network is required")
	}
	if c.CustodyVoidAddress == "" {
		return errors.New("custody void address is required")
	}
	return nil
}

// LoadConfig reads a YAML profile on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}
