package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load(""))

	assert.Equal(t, "bitcoin", Get().General.Alphabet)
	assert.Equal(t, "warn", Get().Logger.Level)
	assert.Equal(t, "text", Get().Logger.Format)
	assert.Equal(t, "stderr", Get().Logger.Output)
	assert.Equal(t, "", Get().UsedConfigFile)
}

func TestLoadConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "base58-config")
	require.NoError(t, err)

	defer func() {
		_ = os.RemoveAll(dir)
	}()

	path := filepath.Join(dir, "base58.toml")
	blob := "[general]\nalphabet = \"ripple\"\n\n[logger]\nlevel = \"debug\"\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(blob), 0644))

	require.NoError(t, Load(path))

	assert.Equal(t, path, Get().UsedConfigFile)
	assert.Equal(t, "ripple", Get().General.Alphabet)
	assert.Equal(t, "debug", Get().Logger.Level)

	// keys absent from the file fall back to defaults
	assert.Equal(t, "text", Get().Logger.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	require.Error(t, Load("/nonexistent/base58.toml"))
}

func TestLoadEnvOverride(t *testing.T) {
	require.NoError(t, os.Setenv("BASE58_GENERAL_ALPHABET", "flickr"))

	defer func() {
		_ = os.Unsetenv("BASE58_GENERAL_ALPHABET")
	}()

	require.NoError(t, Load(""))
	assert.Equal(t, "flickr", Get().General.Alphabet)
}
