package docsite

import (
	"fmt"
	"strings"
)

// Library is the process-wide set of collections. It is loaded eagerly
// at startup and read-only afterwards; inject it into request handlers
// instead of reaching for ambient globals so the core stays testable
// without a running server.
type Library struct {
	collections map[string]*Collection
	names       []string
}

// LoadAll loads every named collection under rootDir. Any failure aborts
// the whole load: a process must not start serving routes for a
// collection that failed to initialize.
func LoadAll(rootDir string, names []string, opts ...Option) (*Library, error) {
	lib := &Library{collections: make(map[string]*Collection, len(names))}
	for _, name := range names {
		c, err := Load(name, rootDir, opts...)
		if err != nil {
			return nil, fmt.Errorf("loading collection %q: %w", name, err)
		}
		lib.collections[strings.ToLower(name)] = c
		lib.names = append(lib.names, name)
	}
	return lib, nil
}

// Collection looks up a collection by name, case-insensitively.
func (l *Library) Collection(name string) (*Collection, error) {
	c, ok := l.collections[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return c, nil
}

// Names returns the collection names in load order.
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}
