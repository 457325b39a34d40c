package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DailyQuotas is the fixed per-pool draw size for the daily rotation.
// The two observed deployments use 2+1+1 (no gather) and 2+2+2 (with
// gather), so this is configuration rather than hard-wired logic.
type DailyQuotas struct {
	Kill     int `yaml:"kill" validate:"min=0"`
	Gather   int `yaml:"gather" validate:"min=0"`
	Miniboss int `yaml:"miniboss" validate:"min=0"`
	Raid     int `yaml:"raid" validate:"min=0"`
}

// Engine holds the engine tuning knobs loaded from YAML.
type Engine struct {
	DailyQuotas   DailyQuotas `yaml:"daily_quotas"`
	GatherEnabled bool        `yaml:"gather_enabled"`
}

// DefaultEngine returns the standard 2 kill + 1 miniboss + 1 raid rotation
// with gather bounties disabled.
func DefaultEngine() Engine {
	return Engine{
		DailyQuotas: DailyQuotas{
			Kill:     2,
			Gather:   0,
			Miniboss: 1,
			Raid:     1,
		},
		GatherEnabled: false,
	}
}

// LoadEngine reads the engine tuning file. A missing file yields the
// defaults; a malformed or invalid file is reported so the caller can
// log and fall back rather than abort startup.
func LoadEngine(path string) (Engine, error) {
	eng := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return eng, nil
		}
		return DefaultEngine(), fmt.Errorf("failed to read engine config: %w", err)
	}

	if err := yaml.Unmarshal(data, &eng); err != nil {
		return DefaultEngine(), fmt.Errorf("failed to parse engine config: %w", err)
	}

	if err := validator.New().Struct(eng); err != nil {
		return DefaultEngine(), fmt.Errorf("engine config failed validation: %w", err)
	}

	if !eng.GatherEnabled {
		eng.DailyQuotas.Gather = 0
	}

	return eng, nil
}
