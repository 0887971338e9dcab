package gridworld

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config holds the stochastic and reward parameters of a grid.
type Config struct {
	// Noise is the probability of slipping sideways, split evenly between
	// the two perpendicular directions.
	Noise float64 `yaml:"noise" mapstructure:"noise"`
	// Discount is the γ handed to the solver.
	Discount float64 `yaml:"discount" mapstructure:"discount"`
	// LivingReward is paid on every step that does not enter a terminal.
	LivingReward float64 `yaml:"living_reward" mapstructure:"living_reward"`
	// Terminals maps terminal letters of the layout to their rewards.
	Terminals map[string]float64 `yaml:"terminals,omitempty" mapstructure:"terminals"`
}

// DefaultConfig returns noise 0.2, discount 0.9, no living reward and G
// worth +1.
func DefaultConfig() Config {
	return Config{
		Noise:     0.2,
		Discount:  0.9,
		Terminals: map[string]float64{"G": 1},
	}
}

// Validate checks that noise and discount lie in [0, 1].
func (c Config) Validate() error {
	if math.IsNaN(c.Noise) || c.Noise < 0 || c.Noise > 1 {
		return fmt.Errorf("%w: noise %v", ErrBadConfig, c.Noise)
	}
	if math.IsNaN(c.Discount) || c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("%w: discount %v", ErrBadConfig, c.Discount)
	}
	return nil
}

// LoadConfig decodes YAML on top of DefaultConfig and validates the result.
// A terminals table replaces the default one rather than merging with it.
// Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	return DecodeConfig(r, DefaultConfig())
}

// DecodeConfig is LoadConfig with base in place of DefaultConfig, so a file
// can refine a preset. base is not modified.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	cfg := base
	cfg.Terminals = nil
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("gridworld: decode config: %w", err)
	}
	if cfg.Terminals == nil {
		cfg.Terminals = lo.Assign(base.Terminals)
		if len(cfg.Terminals) == 0 {
			cfg.Terminals = DefaultConfig().Terminals
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	return LoadConfigFileOnto(path, DefaultConfig())
}

// LoadConfigFileOnto reads a YAML config from path on top of base.
func LoadConfigFileOnto(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("gridworld: %w", err)
	}
	return DecodeConfig(bytes.NewReader(data), base)
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// DiscountLayout is the classic bridge-and-cliff world: a near exit n (+1),
// a far exit f (+10) and a cliff row x (-10). Its rewards come from the
// presets.
var DiscountLayout = []string{
	".....",
	".#...",
	".#n#f",
	"S....",
	"xxxxx",
}

var discountTerminals = map[string]float64{"n": 1, "f": 10, "x": -10}

func discountPreset(noise, discount, living float64) Config {
	return Config{
		Noise:        noise,
		Discount:     discount,
		LivingReward: living,
		Terminals:    lo.Assign(discountTerminals),
	}
}

// presets tune DiscountLayout towards a particular behavior.
var presets = map[string]func() Config{
	// near exit along the cliff
	"seek-near-risky": func() Config { return discountPreset(0.002, 0.09, -1) },
	// near exit, away from the cliff
	"seek-near-safe": func() Config { return discountPreset(0.5, 0.67, -1) },
	// far exit along the cliff
	"seek-far-risky": func() Config { return discountPreset(0.002, 0.9, -1) },
	// far exit, away from the cliff
	"seek-far-safe": func() Config { return discountPreset(0.2, 1, -0.1) },
	// never leave
	"avoid-exits": func() Config { return discountPreset(0.02, 0.99, 1) },
	// leave as soon as possible, cliff included
	"seek-any-exit": func() Config { return discountPreset(0.2, 0.99, -20) },
}

// Preset returns a fresh copy of the named configuration.
func Preset(name string) (Config, error) {
	mk, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return mk(), nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}
