package lint

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "auto", config.Color)
	assert.Equal(t, 500*time.Millisecond, config.Debounce())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pylin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: project\ncolor: never\ndebounce_ms: 250\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "project", config.Name)
	assert.Equal(t, "never", config.Color)
	assert.Equal(t, 250*time.Millisecond, config.Debounce())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pylin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\t not yaml ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigClampsDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pylin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_ms: -5\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, config.Debounce())
}
