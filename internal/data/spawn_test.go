package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/n88/worlds/internal/data"
)

const spawnYAML = `
- name: drifter
  count: 3
  x: 1
  y: 2
  dx: 0.5
  ttl: 10
- name: rock
  hp: 20
`

func TestParseSpawnTable(t *testing.T) {
	tbl, err := data.ParseSpawnTable([]byte(spawnYAML))
	assert.NilError(t, err)
	assert.Equal(t, tbl.Count(), 2)
	assert.Equal(t, tbl.Total(), 4)

	e := tbl.Entries()[0]
	assert.Equal(t, e.Name, "drifter")
	assert.Equal(t, e.DX, 0.5)
	assert.Equal(t, e.TTL, 10)

	rock := tbl.Entries()[1]
	assert.Equal(t, rock.Copies(), 1)
	assert.Equal(t, rock.HP, 20)
}

func TestParseSpawnTableRejectsNegativeTTL(t *testing.T) {
	_, err := data.ParseSpawnTable([]byte("- name: bad\n  ttl: -1\n"))
	assert.ErrorContains(t, err, "must not be negative")
}

func TestParseSpawnTableRejectsBadYAML(t *testing.T) {
	_, err := data.ParseSpawnTable([]byte("name: [unclosed"))
	assert.ErrorContains(t, err, "parse spawn list")
}

func TestLoadSpawnTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spawn_list.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(spawnYAML), 0o644))

	tbl, err := data.LoadSpawnTable(path)
	assert.NilError(t, err)
	assert.Equal(t, tbl.Count(), 2)

	_, err = data.LoadSpawnTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read spawn list")
}
