// Package registry provides a global catalog of named actor factories.
// Actor kinds register themselves in init() functions, so level symbol tables
// can be written in config files as symbol -> kind name and resolved at
// runtime without hardcoding constructors.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// KindInfo contains metadata about a registered actor kind.
type KindInfo struct {
	Name        string     // Name used in config files, e.g. "fire_rain"
	Kind        world.Kind // Tag of the actors the factory produces
	Description string
}

type registration struct {
	info    KindInfo
	factory world.Factory
}

var (
	factories = make(map[string]registration)
	mu        sync.RWMutex
)

// Register adds a named actor factory to the registry.
// Panics if the name is empty or already registered, or if f is nil.
func Register(info KindInfo, f world.Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.Name == "" {
		panic("registry: empty actor kind name")
	}
	if _, exists := factories[info.Name]; exists {
		panic(fmt.Sprintf("registry: actor kind %q already registered", info.Name))
	}
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for actor kind %q", info.Name))
	}

	factories[info.Name] = registration{info: info, factory: f}
}

// List returns all registered kinds, sorted by name.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(factories))
	for _, r := range factories {
		result = append(result, r.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the factory registered under name.
func Lookup(name string) (world.Factory, error) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown actor kind %q", name)
	}
	return r.factory, nil
}

// Create instantiates an actor of the named kind at pos.
func Create(name string, pos core.Vector, rng *rand.Rand) (world.Actor, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(pos, rng), nil
}

// Exists checks if an actor kind with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// Dictionary resolves a symbol table written as symbol -> kind name into a
// world.Dictionary. Every symbol must be exactly one character.
func Dictionary(symbols map[string]string) (world.Dictionary, error) {
	dict := make(world.Dictionary, len(symbols))
	for sym, name := range symbols {
		if utf8.RuneCountInString(sym) != 1 {
			return nil, fmt.Errorf("registry: symbol %q must be a single character", sym)
		}
		f, err := Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("registry: symbol %q: %w", sym, err)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		dict[r] = f
	}
	return dict, nil
}
