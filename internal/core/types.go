package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Num is an optional float. Valid=false represents a missing value and
// marshals to JSON null. It embeds pgtype.Float8 so the record can be handed
// straight to a pgx-backed persistence layer.
type Num struct {
	pgtype.Float8
}

// NumOf returns a present value.
func NumOf(v float64) Num {
	return Num{pgtype.Float8{Float64: v, Valid: true}}
}

// NullNum returns a missing value.
func NullNum() Num {
	return Num{}
}

// Get returns the value and whether it is present.
func (n Num) Get() (float64, bool) {
	return n.Float64, n.Valid
}

// IsNull reports whether the value is missing.
func (n Num) IsNull() bool {
	return !n.Valid
}

// SubFrom returns x - n. A missing n yields a missing result.
func (n Num) SubFrom(x float64) Num {
	if !n.Valid {
		return NullNum()
	}
	return NumOf(x - n.Float64)
}

// Clamp limits v to [lo, hi], bounds inclusive.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Record is the canonical player analysis produced by every shape mapper.
// Every field is always present; missing numbers are null and missing text
// is the empty string.
type Record struct {
	StrengthForehandScore Num    `json:"strengthForehandScore"`
	StrengthServeScore    Num    `json:"strengthServeScore"`
	StrengthVolleyScore   Num    `json:"strengthVolleyScore"`
	StrengthMovementScore Num    `json:"strengthMovementScore"`
	StrengthSummary       string `json:"strengthSummary"`

	// Weakness scores: higher means a more pronounced weakness.
	WeaknessBackhandScore    Num    `json:"weaknessBackhandScore"`
	WeaknessConsistencyScore Num    `json:"weaknessConsistencyScore"`
	WeaknessPressureScore    Num    `json:"weaknessPressureScore"`
	WeaknessSummary          string `json:"weaknessSummary"`

	TacticalStyle        string `json:"tacticalStyle"`
	AggressionIndex      Num    `json:"aggressionIndex"`
	NetApproachFrequency Num    `json:"netApproachFrequency"` // percent of total shots
	TacticalSummary      string `json:"tacticalSummary"`

	AIRecommendations  string `json:"aiRecommendations"`
	TrainingFocusAreas string `json:"trainingFocusAreas"`
}

// Shape identifies which header pattern a table matched.
type Shape int

const (
	ShapeGeneric Shape = iota
	ShapeSummary
	ShapeDetailed
)

func (s Shape) String() string {
	switch s {
	case ShapeSummary:
		return "summary"
	case ShapeDetailed:
		return "detailed"
	case ShapeGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// MarshalText lets Shape appear by name in JSON responses and log lines.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names produced by String.
func (s *Shape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// ParseShape returns the Shape with the given name, ignoring case.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "summary":
		return ShapeSummary, nil
	case "detailed":
		return ShapeDetailed, nil
	case "generic":
		return ShapeGeneric, nil
	default:
		return ShapeGeneric, fmt.Errorf("unknown shape %q", name)
	}
}

// Row maps header names to raw cell values.
type Row map[string]string

// First returns the first non-empty value among the given column aliases.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		if v := r[k]; v != "" {
			return v
		}
	}
	return ""
}

// Table is the header-indexed row set built from one source.
type Table struct {
	Headers []string
	Rows    []Row
	Dropped int // data lines discarded for a field count mismatch
}

// Result contains the outcome of a single parse.
type Result struct {
	ParseID     string        `json:"parseId"`
	FileName    string        `json:"fileName"`
	Shape       Shape         `json:"shape"`
	Record      Record        `json:"analysis"`
	TotalRows   int           `json:"totalRows"`
	DroppedRows int           `json:"droppedRows"`
	Duration    time.Duration `json:"-"`
}
