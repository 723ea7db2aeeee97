package core

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNumSubFrom(t *testing.T) {
	if got, ok := NumOf(7).SubFrom(10).Get(); !ok || got != 3 {
		t.Errorf("NumOf(7).SubFrom(10) = %v, %v; want 3, true", got, ok)
	}
	if !NullNum().SubFrom(10).IsNull() {
		t.Error("NullNum().SubFrom(10) should stay null")
	}
	if got, _ := NumOf(0).SubFrom(10).Get(); got != 10 {
		t.Errorf("NumOf(0).SubFrom(10) = %v, want 10", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-2, 0},
		{0, 0},
		{5.5, 5.5},
		{10, 10},
		{14, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 10); got != tt.want {
			t.Errorf("Clamp(%v, 0, 10) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRecordJSON_DefaultsArePresent(t *testing.T) {
	data, err := json.Marshal(Record{})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	numeric := []string{
		"strengthForehandScore", "strengthServeScore", "strengthVolleyScore",
		"strengthMovementScore", "weaknessBackhandScore", "weaknessConsistencyScore",
		"weaknessPressureScore", "aggressionIndex", "netApproachFrequency",
	}
	text := []string{
		"strengthSummary", "weaknessSummary", "tacticalStyle", "tacticalSummary",
		"aiRecommendations", "trainingFocusAreas",
	}

	if len(fields) != len(numeric)+len(text) {
		t.Errorf("record has %d fields, want %d", len(fields), len(numeric)+len(text))
	}
	for _, k := range numeric {
		v, ok := fields[k]
		if !ok || v != nil {
			t.Errorf("%s = %v (present %v), want null", k, v, ok)
		}
	}
	for _, k := range text {
		if v, ok := fields[k]; !ok || v != "" {
			t.Errorf("%s = %v (present %v), want empty string", k, v, ok)
		}
	}
}

func TestRecordJSON_Values(t *testing.T) {
	rec := Record{StrengthServeScore: NumOf(6.5), TacticalStyle: "Counterpuncher"}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"strengthServeScore":6.5`) {
		t.Errorf("missing serve score in %s", s)
	}
	if !strings.Contains(s, `"tacticalStyle":"Counterpuncher"`) {
		t.Errorf("missing style in %s", s)
	}

	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if got, ok := back.StrengthServeScore.Get(); !ok || got != 6.5 {
		t.Errorf("round trip serve score = %v, %v", got, ok)
	}
	if !back.AggressionIndex.IsNull() {
		t.Error("round trip aggression should be null")
	}
}

func TestShapeText(t *testing.T) {
	for _, shape := range []Shape{ShapeSummary, ShapeDetailed, ShapeGeneric} {
		text, err := shape.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", shape, err)
		}
		var back Shape
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != shape {
			t.Errorf("round trip %v = %v", shape, back)
		}
	}

	if _, err := ParseShape("tabular"); err == nil {
		t.Error("ParseShape(tabular) should fail")
	}
	if got := Shape(42).String(); got != "unknown" {
		t.Errorf("Shape(42).String() = %q, want unknown", got)
	}
}
