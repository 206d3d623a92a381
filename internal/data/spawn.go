package data

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// SpawnEntry describes a group of identical entities to create at startup.
// Zero-valued optional fields skip the matching component.
type SpawnEntry struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"` // 0 is treated as 1
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
	TTL   int     `yaml:"ttl"`
	HP    int     `yaml:"hp"`
}

// Copies returns how many entities the entry creates.
func (e *SpawnEntry) Copies() int {
	if e.Count <= 0 {
		return 1
	}
	return e.Count
}

// SpawnTable is the ordered list of spawn entries loaded from YAML.
type SpawnTable struct {
	entries []SpawnEntry
}

// LoadSpawnTable loads a spawn list file.
func LoadSpawnTable(path string) (*SpawnTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read spawn list %s", path)
	}
	return ParseSpawnTable(raw)
}

// ParseSpawnTable decodes a YAML spawn list.
func ParseSpawnTable(raw []byte) (*SpawnTable, error) {
	var entries []SpawnEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, eris.Wrap(err, "parse spawn list")
	}
	for i := range entries {
		if entries[i].TTL < 0 || entries[i].HP < 0 {
			return nil, eris.Errorf("spawn entry %d (%q): ttl and hp must not be negative", i, entries[i].Name)
		}
	}
	return &SpawnTable{entries: entries}, nil
}

func (t *SpawnTable) Entries() []SpawnEntry { return t.entries }

// Count returns the number of entries.
func (t *SpawnTable) Count() int { return len(t.entries) }

// Total returns the number of entities the whole table creates.
func (t *SpawnTable) Total() int {
	n := 0
	for i := range t.entries {
		n += t.entries[i].Copies()
	}
	return n
}
