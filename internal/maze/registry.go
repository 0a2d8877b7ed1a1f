package maze

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh copy of a layout.
type Factory func() *Maze

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	Name  string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("maze: layout %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title
}

// List returns information about all registered layouts, sorted by name.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for name := range factories {
		result = append(result, LayoutInfo{Name: name, Title: titles[name]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get builds the layout registered under name.
func Get(name string) (*Maze, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("maze: unknown layout %q", name)
	}

	return f(), nil
}

// Exists checks if a layout with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
