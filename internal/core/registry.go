package core

import (
	"fmt"
	"sort"
	"sync"
)

// MatchFunc reports whether a header set belongs to a shape.
type MatchFunc func(headers []string) bool

// MapFunc converts a table of a matched shape into a Record.
type MapFunc func(t *Table) Record

// ShapeDefinition contains everything needed to detect and map one shape.
type ShapeDefinition struct {
	Shape       Shape
	Priority    int    // lower runs first
	Description string // shown by the shapes listing
	Match       MatchFunc
	Map         MapFunc
}

var (
	registry   = make(map[Shape]ShapeDefinition)
	registryMu sync.RWMutex
)

// Register adds a shape definition to the registry.
// Panics if the shape is already registered or the definition is incomplete.
func Register(def ShapeDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Shape]; exists {
		panic(fmt.Sprintf("shape already registered: %s", def.Shape))
	}
	if def.Match == nil || def.Map == nil {
		panic(fmt.Sprintf("shape %s: Match and Map are required", def.Shape))
	}

	registry[def.Shape] = def
}

// Get returns the definition for a shape.
// Returns false if not found.
func Get(shape Shape) (ShapeDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[shape]
	return def, ok
}

// Definitions returns all registered shapes in classification order.
func Definitions() []ShapeDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]ShapeDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority < result[j].Priority
		}
		return result[i].Shape < result[j].Shape
	})

	return result
}

// Classify returns the first definition, in priority order, whose Match
// accepts the headers. A table satisfying several shapes always gets the
// earliest one.
func Classify(headers []string) (ShapeDefinition, error) {
	defs := Definitions()
	if len(defs) == 0 {
		return ShapeDefinition{}, ErrNoShape
	}

	for _, def := range defs {
		if def.Match(headers) {
			return def, nil
		}
	}

	return ShapeDefinition{}, fmt.Errorf("no shape matched headers %q: %w", headers, ErrNoShape)
}

// ShapeCount returns the number of registered shapes.
func ShapeCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered shapes.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[Shape]ShapeDefinition)
}
