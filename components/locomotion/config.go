package locomotion

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/paudar/hulk/energy"
	"github.com/paudar/hulk/walking"
)

// Config is the contents of the parameter file. Anything missing from the
// file keeps its default.
type Config struct {
	Walking walking.Parameters `json:"walking"`
	Energy  energy.Parameters  `json:"energy"`

	// How often the control loop runs.
	CycleTime walking.Duration `json:"cycle_time"`
}

func DefaultConfig() Config {
	return Config{
		Walking:   walking.DefaultParameters(),
		Energy:    energy.DefaultParameters(),
		CycleTime: walking.Duration{Duration: 10 * time.Millisecond},
	}
}

// LoadConfig reads the parameter file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "while reading config")
	}

	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "while parsing %s", path)
	}

	if cfg.CycleTime.Duration <= 0 {
		return cfg, errors.Errorf("invalid cycle time: %s", cfg.CycleTime)
	}

	return cfg, nil
}

// Save writes the config to path, e.g. to start a new parameter file from the
// defaults.
func (c Config) Save(path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "while encoding config")
	}

	return errors.Wrap(os.WriteFile(path, b, 0644), "while writing config")
}
