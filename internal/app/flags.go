package app

import (
	"errors"
	"flag"
	"unicode/utf8"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Glyph   string
	Density float64
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Glyph: "@", Density: 0, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Glyph, "glyph", c.Glyph, "character drawn for live cells")
	fs.Float64Var(&c.Density, "random", c.Density, "fill an unseeded board with live cells at this density (0-1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
}

// Rune returns the glyph drawn for live cells.
func (c *Config) Rune() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyph)
	return r
}

// Validate checks flag values.
func (c *Config) Validate() error {
	if c.Glyph == "" || c.Rune() == utf8.RuneError {
		return errors.New("glyph must be a printable character")
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.New("random density must be within [0, 1]")
	}
	return nil
}

// SeedSource describes where the initial cells come from.
type SeedSource struct {
	Path  string
	Stdin bool
}

// None reports whether no seed input was requested.
func (s SeedSource) None() bool { return s.Path == "" && !s.Stdin }

// ParseArgs binds c to fs, parses args and resolves the seed source: a file
// path, a lone "--" for standard input, or nothing.
func (c *Config) ParseArgs(fs *flag.FlagSet, args []string) (SeedSource, error) {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return SeedSource{}, err
	}
	if err := c.Validate(); err != nil {
		return SeedSource{}, err
	}
	rest := fs.Args()
	switch {
	case len(rest) > 1:
		return SeedSource{}, errors.New("at most one seed source may be given")
	case len(rest) == 1 && rest[0] == "--":
		return SeedSource{Stdin: true}, nil
	case len(rest) == 1:
		return SeedSource{Path: rest[0]}, nil
	case len(args) > 0 && args[len(args)-1] == "--":
		// The flag package swallows the terminator itself.
		return SeedSource{Stdin: true}, nil
	}
	return SeedSource{}, nil
}
