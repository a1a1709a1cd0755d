package microicon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

var (
	// ErrEmptyPath is returned when a required path is empty
	ErrEmptyPath = errors.New("path cannot be empty")
)

// Manifest maps entity ids to icon assets. It is read from TOML:
//
//	[[entity]]
//	id   = "core"
//	root = "mods/core"
//	icon = "assets/icon.png"
//
//	[[entity]]
//	id = "extras"
//	[entity.icons]
//	16 = "icon16.png"
//	64 = "icon64.png"
type Manifest struct {
	Entities []ManifestEntity `toml:"entity"`

	baseDir string
	byID    map[string]int
}

// ManifestEntity is a single entity declaration
type ManifestEntity struct {
	ID    string            `toml:"id"`
	Name  string            `toml:"name"`
	Root  string            `toml:"root"`
	Icon  string            `toml:"icon"`
	Icons map[string]string `toml:"icons"`

	sizes  []int
	bySize map[int]string
}

// LoadManifest reads a manifest file. Relative paths inside it resolve
// against the file's directory.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return ParseManifest(f, filepath.Dir(path))
}

// ParseManifest decodes a manifest, resolving relative paths against baseDir
func ParseManifest(r io.Reader, baseDir string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	m.baseDir = baseDir
	m.byID = make(map[string]int, len(m.Entities))
	for i := range m.Entities {
		e := &m.Entities[i]
		if e.ID == "" {
			return nil, fmt.Errorf("entity %d: missing id", i)
		}
		if _, dup := m.byID[e.ID]; dup {
			return nil, fmt.Errorf("entity %q: declared twice", e.ID)
		}
		e.bySize = make(map[int]string, len(e.Icons))
		for key, path := range e.Icons {
			size, err := strconv.Atoi(key)
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("entity %q: invalid icon size %q", e.ID, key)
			}
			if _, dup := e.bySize[size]; dup {
				return nil, fmt.Errorf("entity %q: icon size %d declared twice", e.ID, size)
			}
			e.bySize[size] = path
			e.sizes = append(e.sizes, size)
		}
		sort.Ints(e.sizes)
		m.byID[e.ID] = i
	}

	return &m, nil
}

// IDs returns the declared entity ids in manifest order
func (m *Manifest) IDs() []string {
	ids := make([]string, 0, len(m.Entities))
	for _, e := range m.Entities {
		ids = append(ids, e.ID)
	}
	return ids
}

// Entity returns the declaration for id
func (m *Manifest) Entity(id string) (ManifestEntity, bool) {
	i, ok := m.byID[id]
	if !ok {
		return ManifestEntity{}, false
	}
	return m.Entities[i], true
}

// IconPath returns the icon file for id closest to size. A declared path
// that does not exist on disk counts as no icon.
func (m *Manifest) IconPath(entityID string, size int) (string, bool) {
	e, ok := m.Entity(entityID)
	if !ok {
		return "", false
	}
	rel, ok := e.iconFor(size)
	if !ok {
		return "", false
	}

	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.baseDir, e.Root, rel)
	}
	if !isFile(path) {
		return "", false
	}
	return path, true
}

// iconFor picks the smallest declared size >= size, else the largest one
func (e ManifestEntity) iconFor(size int) (string, bool) {
	if len(e.sizes) == 0 {
		return e.Icon, e.Icon != ""
	}
	chosen := e.sizes[len(e.sizes)-1]
	for _, s := range e.sizes {
		if s >= size {
			chosen = s
			break
		}
	}
	path := e.bySize[chosen]
	return path, path != ""
}
