package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boogen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	opts := Default()

	assert.Equal(t, 64, opts.PointerWidth)
	assert.Equal(t, "verify::Array", opts.ArrayAbstraction)
	assert.NoError(t, opts.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "pointer-width = 32\narray-abstraction = \"mylib::Vec\"\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, opts.PointerWidth)
	assert.Equal(t, "mylib::Vec", opts.ArrayAbstraction)
}

func TestLoadKeepsDefaultsForOmittedKeys(t *testing.T) {
	path := writeConfig(t, "pointer-width = 16\n")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, opts.PointerWidth)
	assert.Equal(t, "verify::Array", opts.ArrayAbstraction, "omitted keys keep their defaults")
}

func TestLoadRejectsBadPointerWidth(t *testing.T) {
	path := writeConfig(t, "pointer-width = 48\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "pointer-width must be 16, 32, or 64")
}

func TestLoadRejectsEmptyAbstraction(t *testing.T) {
	path := writeConfig(t, "array-abstraction = \"\"\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "array-abstraction must not be empty")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadMalformedToml(t *testing.T) {
	path := writeConfig(t, "pointer-width = [not toml")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}
