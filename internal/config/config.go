package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig is the rules file for a match. All fields are optional in
// the YAML; zero values are filled in from the standard game.
type GameConfig struct {
	// GridSize is the side length N of the N x N board.
	GridSize int `yaml:"grid_size"`
	// Fleet lists ship lengths allocated to each player.
	Fleet []int `yaml:"fleet"`
	// Seed fixes all randomness (placement, AI pick, coin flip).
	// Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
}

const standardGridSize = 10

// standardFleet is the classic contingent: one destroyer, two submarines,
// one battleship, one aircraft carrier.
var standardFleet = []int{2, 3, 3, 4, 5}

func Default() GameConfig {
	fleet := make([]int, len(standardFleet))
	copy(fleet, standardFleet)
	return GameConfig{GridSize: standardGridSize, Fleet: fleet}
}

func Load(path string) (GameConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fileCfg GameConfig
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, err
	}

	if fileCfg.GridSize != 0 {
		cfg.GridSize = fileCfg.GridSize
	}
	if len(fileCfg.Fleet) != 0 {
		cfg.Fleet = fileCfg.Fleet
	}
	cfg.Seed = fileCfg.Seed

	return cfg, cfg.validate()
}

func (cfg GameConfig) validate() error {
	if cfg.GridSize < 2 {
		return fmt.Errorf("grid_size must be at least 2, got %d", cfg.GridSize)
	}
	for _, l := range cfg.Fleet {
		if l < 2 || l > 5 {
			return fmt.Errorf("fleet contains unsupported ship length %d", l)
		}
		if l > cfg.GridSize {
			return fmt.Errorf("ship of length %d cannot fit on a %dx%d board", l, cfg.GridSize, cfg.GridSize)
		}
	}
	return nil
}
