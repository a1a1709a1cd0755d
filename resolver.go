package microicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
)

// Resolver locates the icon asset of an entity.
// A false result means the entity has no icon configured.
type Resolver interface {
	IconPath(entityID string, size int) (string, bool)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(entityID string, size int) (string, bool)

// IconPath calls f(entityID, size)
func (f ResolverFunc) IconPath(entityID string, size int) (string, bool) {
	return f(entityID, size)
}

// IconExtensions lists the file extensions DirResolver tries, in order
var IconExtensions = []string{"png", "gif", "jpg", "jpeg", "bmp", "webp"}

// DirResolver finds icons named <id>.<ext> inside a single directory
type DirResolver struct {
	dir    string
	filter glob.Glob
}

// NewDirResolver creates a resolver for dir. A non-empty pattern restricts
// which entity ids may have an icon, e.g. "mod-*" or "{core,api}".
func NewDirResolver(dir, pattern string) (*DirResolver, error) {
	if dir == "" {
		return nil, ErrEmptyPath
	}
	r := &DirResolver{dir: dir}
	if pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile id pattern %q: %w", pattern, err)
		}
		r.filter = g
	}
	return r, nil
}

// IconPath returns the first existing <dir>/<id>.<ext>; size is ignored
func (r *DirResolver) IconPath(entityID string, _ int) (string, bool) {
	if entityID == "" || filepath.Base(entityID) != entityID {
		return "", false
	}
	if r.filter != nil && !r.filter.Match(entityID) {
		return "", false
	}
	for _, ext := range IconExtensions {
		path := filepath.Join(r.dir, entityID+"."+ext)
		if isFile(path) {
			return path, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
