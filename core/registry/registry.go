package registry

import (
	"sort"
	"sync"
)

// Registry is a process-wide key/value store with per-key locks.
// Extension points (cmd, cron, api, graphql) keep their registrations here and lock
// their key once the application has started.
type Registry struct {
	mu     sync.RWMutex
	values map[string]interface{}
	locked map[string]bool
}

// GlobalRegistry is the shared registry used by init()-time registrations.
var GlobalRegistry = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{
		values: make(map[string]interface{}),
		locked: make(map[string]bool),
	}
}

func (r *Registry) GetGlobal(key string) (interface{}, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

func (r *Registry) SetGlobal(key string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
}

// Lock marks key as immutable. Callers check IsLocked before writing.
func (r *Registry) Lock(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locked[key] = true
}

func (r *Registry) IsLocked(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locked[key]
}

// UnlockForTesting re-opens a locked key.
func (r *Registry) UnlockForTesting(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locked, key)
}

// --- Module manifests ---

// Module identifies a registered extension module and its root location.
type Module struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// RegisterModule records a module manifest. Call from init(). Panics on duplicates.
func RegisterModule(name, dir string) {
	GlobalRegistry.mu.Lock()
	defer GlobalRegistry.mu.Unlock()
	mods, _ := GlobalRegistry.values[KeyRegistryModules].(map[string]Module)
	if mods == nil {
		mods = make(map[string]Module)
	}
	if _, ok := mods[name]; ok {
		panic("registry: duplicate module " + name)
	}
	mods[name] = Module{Name: name, Dir: dir}
	GlobalRegistry.values[KeyRegistryModules] = mods
}

// Modules returns registered modules sorted by name.
func Modules() []Module {
	v, _ := GlobalRegistry.GetGlobal(KeyRegistryModules)
	mods, _ := v.(map[string]Module)
	out := make([]Module, 0, len(mods))
	for _, m := range mods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
