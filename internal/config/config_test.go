package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[simulation]
max_ticks = 50

[logging]
level = "debug"
`))
	assert.NilError(t, err)
	assert.Equal(t, cfg.Simulation.MaxTicks, 50)
	assert.Equal(t, cfg.Simulation.TickRate, 200*time.Millisecond)
	assert.Equal(t, cfg.Logging.Level, "debug")
	assert.Equal(t, cfg.Logging.Format, "console")
	assert.Equal(t, cfg.Scripting.Dir, "scripts")
}

func TestParseDuration(t *testing.T) {
	cfg, err := Parse([]byte("[simulation]\ntick_rate = \"50ms\"\n"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.Simulation.TickRate, 50*time.Millisecond)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("[simulation]\nmax_ticks = -1\n"))
	assert.ErrorContains(t, err, "max_ticks")

	_, err = Parse([]byte("[profile]\nmode = \"block\"\n"))
	assert.ErrorContains(t, err, "profile.mode")

	_, err = Parse([]byte("[simulation\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worlds.toml")
	assert.NilError(t, os.WriteFile(path, []byte("[data]\nspawn_list = \"\"\n"), 0o644))

	cfg, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.Data.SpawnList, "")

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "read config")
}
