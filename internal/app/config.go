package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hora-app/mascot/internal/render"
)

const (
	EnvOutDir   = "MASCOT_OUT_DIR"
	EnvName     = "MASCOT_NAME"
	EnvSeed     = "MASCOT_SEED"
	EnvPreview  = "MASCOT_PREVIEW"
	EnvFBDevice = "MASCOT_FB_DEVICE"
)

const DefaultName = "mascot-hora"

// Config selects where the two PNGs go and how the render is seeded.
type Config struct {
	OutDir   string
	Name     string
	Seed     uint64
	Preview  bool
	FBDevice string
}

// DefaultConfigFromEnv returns the defaults, overridden by any MASCOT_* variables set.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:   ".",
		Name:     DefaultName,
		Seed:     render.DefaultSeed,
		FBDevice: render.DefaultFBDevice,
	}
	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvName); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv(EnvFBDevice); v != "" {
		cfg.FBDevice = v
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an unsigned integer (got %q): %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}
	if raw := os.Getenv(EnvPreview); raw != "" {
		preview, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvPreview, raw, err)
		}
		cfg.Preview = preview
	}
	return cfg, nil
}

// OpaquePath is the RGB output.
func (c Config) OpaquePath() string { return filepath.Join(c.OutDir, c.Name+".png") }

// AlphaPath is the RGBA output, next to the opaque one.
func (c Config) AlphaPath() string { return filepath.Join(c.OutDir, c.Name+"-rgba.png") }
