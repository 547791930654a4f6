package fontregistry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/foliant/xslfo/font"
)

// Instance is a cached, size-bound handle to a resolved font: the parsed
// File (nil if the family fell back to a base-14 PDF font with no
// embedded file) and the resolution tier it came from.
type Instance struct {
	Family       string
	Size         float64
	File         *font.File
	BaseFontOnly bool
	BaseFontName string
}

// Registry caches Resolver lookups by normalized family name, and shaped
// instances by family+size, mirroring the teacher's font.Registry split
// between fonts and typecases.
type Registry struct {
	sync.Mutex
	resolver  *font.Resolver
	instances map[string]*Instance
}

var globalRegistry *Registry
var globalRegistryCreation sync.Once

// GlobalRegistry returns the process-wide registry, created on first use.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalRegistry = NewRegistry(font.NewResolver())
	})
	return globalRegistry
}

// NewRegistry returns a registry backed by the given Resolver.
func NewRegistry(r *font.Resolver) *Registry {
	return &Registry{resolver: r, instances: make(map[string]*Instance)}
}

// Instance returns the cached font instance for a family at a given size,
// resolving and caching it on first request. Resolution never fails: a
// family with no usable file falls back to a base-14 PDF font name (spec
// §4.2 "Fallback").
func (r *Registry) Instance(family string, size float64) *Instance {
	key := normalizeInstanceKey(family, size)
	r.Lock()
	defer r.Unlock()
	if inst, ok := r.instances[key]; ok {
		T().Debugf("registry found font instance %s", key)
		return inst
	}
	file, baseOnly, baseName := r.resolver.Resolve(family)
	inst := &Instance{Family: family, Size: size, File: file, BaseFontOnly: baseOnly, BaseFontName: baseName}
	if baseOnly {
		T().Infof("registry: family %q has no embeddable file, using base font %s", family, baseName)
	} else {
		T().Debugf("registry caches font instance %s", key)
	}
	r.instances[key] = inst
	return inst
}

func normalizeInstanceKey(family string, size float64) string {
	name := strings.ToLower(strings.TrimSpace(family))
	return fmt.Sprintf("%s-%.2f", name, size)
}

// DebugList logs the current contents of the registry's instance cache.
func (r *Registry) DebugList() {
	r.Lock()
	defer r.Unlock()
	T().Debugf("--- registered font instances ---")
	for k, v := range r.instances {
		T().Debugf("instance [%s] = family %q base-only=%v", k, v.Family, v.BaseFontOnly)
	}
	T().Debugf("----------------------------------")
}
