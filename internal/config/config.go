// Package config holds the translation options as they are encoded in TOML.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Options represents the target-dependent knobs of a translation run.
type Options struct {
	// PointerWidth is the bit width pointer-sized integers resolve to.
	PointerWidth int `toml:"pointer-width"`
	// ArrayAbstraction is the fully qualified name of the aggregate
	// recognized as the unbounded-array abstraction.
	ArrayAbstraction string `toml:"array-abstraction"`
}

// Default returns the options used when no config file is given.
func Default() Options {
	return Options{
		PointerWidth:     64,
		ArrayAbstraction: "verify::Array",
	}
}

// Load reads options from a TOML file. Omitted keys keep their defaults.
func Load(path string) (Options, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}

	opts := Default()
	if err := toml.Unmarshal(buff, &opts); err != nil {
		return Options{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate rejects option values the translator cannot honor.
func (o Options) Validate() error {
	switch o.PointerWidth {
	case 16, 32, 64:
	default:
		return fmt.Errorf("pointer-width must be 16, 32, or 64, got %d", o.PointerWidth)
	}
	if o.ArrayAbstraction == "" {
		return fmt.Errorf("array-abstraction must not be empty")
	}
	return nil
}
