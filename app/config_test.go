package app

import (
	"io/fs"
	"os"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coro-sh/domaingen/internal/testutil"
)

func TestConfig_InitDefaults(t *testing.T) {
	var cfg Config
	cfg.InitDefaults()

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Structured)
	assert.Equal(t, "mt19937", cfg.Algorithm)
	assert.Empty(t, cfg.Output.Path)
	assert.False(t, cfg.Output.Gzip)
	assert.Equal(t, gzip.DefaultCompression, cfg.Output.GzipLevel)
	assert.NoError(t, cfg.Validation().ToError())
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "pcg algorithm",
			mutate: func(cfg *Config) { cfg.Algorithm = "pcg" },
		},
		{
			name:    "empty algorithm",
			mutate:  func(cfg *Config) { cfg.Algorithm = "" },
			wantErr: true,
		},
		{
			name:   "debug level",
			mutate: func(cfg *Config) { cfg.Logger.Level = "debug" },
		},
		{
			name:    "unknown level",
			mutate:  func(cfg *Config) { cfg.Logger.Level = "loud" },
			wantErr: true,
		},
		{
			name: "gzip huffman only",
			mutate: func(cfg *Config) {
				cfg.Output.Gzip = true
				cfg.Output.GzipLevel = gzip.HuffmanOnly
			},
		},
		{
			name: "gzip best compression",
			mutate: func(cfg *Config) {
				cfg.Output.Gzip = true
				cfg.Output.GzipLevel = gzip.BestCompression
			},
		},
		{
			name: "gzip level below range",
			mutate: func(cfg *Config) {
				cfg.Output.Gzip = true
				cfg.Output.GzipLevel = -3
			},
			wantErr: true,
		},
		{
			name: "gzip level ignored without gzip",
			mutate: func(cfg *Config) {
				cfg.Output.GzipLevel = 100
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.InitDefaults()
			tt.mutate(&cfg)

			err := cfg.Validation().ToError()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := testutil.RandFilePath(t, ".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_LoadFile(t *testing.T) {
	path := writeConfigFile(t, `
algorithm: pcg
logger:
  structured: true
output:
  gzip: true
  gzipLevel: 9
`)

	var cfg Config
	cfg.InitDefaults()
	require.NoError(t, cfg.LoadFile(path))

	assert.Equal(t, "pcg", cfg.Algorithm)
	assert.Equal(t, "warn", cfg.Logger.Level, "keys missing from the file keep their defaults")
	assert.True(t, cfg.Logger.Structured)
	assert.Empty(t, cfg.Output.Path)
	assert.True(t, cfg.Output.Gzip)
	assert.Equal(t, gzip.BestCompression, cfg.Output.GzipLevel)
	assert.NoError(t, cfg.Validation().ToError())
}

func TestConfig_LoadFile_Empty(t *testing.T) {
	path := writeConfigFile(t, "")

	var cfg Config
	cfg.InitDefaults()
	require.NoError(t, cfg.LoadFile(path))

	var want Config
	want.InitDefaults()
	assert.Equal(t, want, cfg)
}

func TestConfig_LoadFile_DoesNotValidate(t *testing.T) {
	path := writeConfigFile(t, "algorithm: bogus\n")

	var cfg Config
	cfg.InitDefaults()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "bogus", cfg.Algorithm)
	assert.Error(t, cfg.Validation().ToError())
}

func TestConfig_LoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown key", content: "tld: org\n"},
		{name: "wrong type", content: "output:\n  gzipLevel: high\n"},
		{name: "malformed yaml", content: "algorithm: [pcg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.InitDefaults()
			assert.Error(t, cfg.LoadFile(writeConfigFile(t, tt.content)))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		var cfg Config
		err := cfg.LoadFile(testutil.RandFilePath(t, ".yaml"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}
