package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk prefab overrides are looked up.
var Dir = "prefabs"

// Load returns the prefab from Dir when present, otherwise the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// ModTracker remembers the disk mod time of each prefab it has seen.
type ModTracker struct {
	seen map[string]time.Time
}

// Changed reports whether the disk copy of name was modified since the last
// call for it. A prefab with no disk copy always counts as changed.
func (m *ModTracker) Changed(name string) bool {
	clean := cleanPrefabPath(name)
	mod, ok := ModTime(clean)
	if !ok {
		delete(m.seen, clean)
		return true
	}
	if prev, ok := m.seen[clean]; ok && prev.Equal(mod) {
		return false
	}
	if m.seen == nil {
		m.seen = make(map[string]time.Time)
	}
	m.seen[clean] = mod
	return true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
