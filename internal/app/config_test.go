package app

import (
	"path/filepath"
	"testing"

	"github.com/hora-app/mascot/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvOutDir, EnvName, EnvSeed, EnvPreview, EnvFBDevice} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		OutDir:   ".",
		Name:     DefaultName,
		Seed:     render.DefaultSeed,
		FBDevice: render.DefaultFBDevice,
	}, cfg)
}

func TestDefaultConfigFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOutDir, "/tmp/icons")
	t.Setenv(EnvName, "owl")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvPreview, "true")
	t.Setenv(EnvFBDevice, "/dev/fb1")

	cfg, err := DefaultConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{OutDir: "/tmp/icons", Name: "owl", Seed: 7, Preview: true, FBDevice: "/dev/fb1"}, cfg)
}

func TestDefaultConfigFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "-1"},
		{EnvSeed, "forty-two"},
		{EnvPreview, "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := DefaultConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestConfigPaths(t *testing.T) {
	cfg := Config{OutDir: "out", Name: "mascot-hora"}
	assert.Equal(t, filepath.Join("out", "mascot-hora.png"), cfg.OpaquePath())
	assert.Equal(t, filepath.Join("out", "mascot-hora-rgba.png"), cfg.AlphaPath())
}
