package backend

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Factory returns a fresh export session for one drawing. Each call must
// return a new Backend; sessions are not shared between exports.
type Factory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
)

// Register makes an output format available under name. The format
// packages call it from init:
//
//	raster        PNG through gg
//	svg           SVG document
//	dxf           ezdxf script, one polyline per path run
//	dxf-stitched  ezdxf script of welded bulge polylines
//
// A nil factory or a name that is already taken is a programming error and
// panics.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: nil factory for " + name)
	}
	if _, dup := backends[name]; dup {
		panic("backend: " + name + " registered twice")
	}
	backends[name] = factory
}

// Unregister forgets name. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend starts a session of the format registered as name. The format
// package has to be linked in, usually by a blank import.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is NewBackend for names known to be linked in.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends lists the registered format names in order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether name can be passed to NewBackend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Count returns how many formats are registered.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(backends)
}
