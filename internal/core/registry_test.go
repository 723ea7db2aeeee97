package core

import (
	"errors"
	"testing"
)

// withRegistry runs fn against an empty registry and restores the shapes
// registered by other test files afterwards.
func withRegistry(t *testing.T, fn func()) {
	t.Helper()
	saved := Definitions()
	Clear()
	defer func() {
		Clear()
		for _, def := range saved {
			Register(def)
		}
	}()
	fn()
}

func fixedMap(style string) MapFunc {
	return func(*Table) Record { return Record{TacticalStyle: style} }
}

func headerIs(want string) MatchFunc {
	return func(headers []string) bool {
		for _, h := range headers {
			if h == want {
				return true
			}
		}
		return false
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	withRegistry(t, func() {
		Register(ShapeDefinition{Shape: ShapeGeneric, Priority: 100, Match: func([]string) bool { return true }, Map: fixedMap("generic")})
		Register(ShapeDefinition{Shape: ShapeDetailed, Priority: 20, Match: headerIs("count"), Map: fixedMap("detailed")})
		Register(ShapeDefinition{Shape: ShapeSummary, Priority: 10, Match: headerIs("metric"), Map: fixedMap("summary")})

		tests := []struct {
			headers []string
			want    Shape
		}{
			{[]string{"metric", "count"}, ShapeSummary},
			{[]string{"count"}, ShapeDetailed},
			{[]string{"other"}, ShapeGeneric},
			{nil, ShapeGeneric},
		}
		for _, tt := range tests {
			def, err := Classify(tt.headers)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", tt.headers, err)
			}
			if def.Shape != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.headers, def.Shape, tt.want)
			}
		}

		defs := Definitions()
		if len(defs) != 3 || defs[0].Shape != ShapeSummary || defs[2].Shape != ShapeGeneric {
			t.Errorf("Definitions order = %v", defs)
		}
	})
}

func TestClassify_EmptyRegistry(t *testing.T) {
	withRegistry(t, func() {
		if _, err := Classify([]string{"a"}); !errors.Is(err, ErrNoShape) {
			t.Errorf("error = %v, want ErrNoShape", err)
		}
	})
}

func TestClassify_NoMatch(t *testing.T) {
	withRegistry(t, func() {
		Register(ShapeDefinition{Shape: ShapeSummary, Priority: 1, Match: headerIs("metric"), Map: fixedMap("")})
		if _, err := Classify([]string{"a"}); !errors.Is(err, ErrNoShape) {
			t.Errorf("error = %v, want ErrNoShape", err)
		}
	})
}

func TestRegister_Panics(t *testing.T) {
	withRegistry(t, func() {
		def := ShapeDefinition{Shape: ShapeSummary, Match: headerIs("x"), Map: fixedMap("")}
		Register(def)

		assertPanics(t, "duplicate", func() { Register(def) })
		assertPanics(t, "nil match", func() {
			Register(ShapeDefinition{Shape: ShapeDetailed, Map: fixedMap("")})
		})
		assertPanics(t, "nil map", func() {
			Register(ShapeDefinition{Shape: ShapeGeneric, Match: headerIs("x")})
		})

		if ShapeCount() != 1 {
			t.Errorf("ShapeCount = %d, want 1", ShapeCount())
		}
		if _, ok := Get(ShapeSummary); !ok {
			t.Error("Get(ShapeSummary) not found")
		}
		if _, ok := Get(ShapeDetailed); ok {
			t.Error("Get(ShapeDetailed) should not be found")
		}
	})
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
