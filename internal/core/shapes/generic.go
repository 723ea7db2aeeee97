package shapes

import (
	"strings"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func init() {
	registerGeneric()
}

func registerGeneric() {
	core.Register(core.ShapeDefinition{
		Shape:       core.ShapeGeneric,
		Priority:    priorityGeneric,
		Description: "fallback: column names matched by keyword, first row only",
		Match:       func([]string) bool { return true },
		Map:         mapGeneric,
	})
}

// genericRule routes a column into the record when its lower-cased header
// satisfies match. Rules are tried in order and the first match wins.
type genericRule struct {
	match func(key string) bool
	apply func(rec *core.Record, value string)
}

// containsAll reports whether key contains every word.
func containsAll(words ...string) func(string) bool {
	return func(key string) bool {
		for _, w := range words {
			if !strings.Contains(key, w) {
				return false
			}
		}
		return true
	}
}

func numberInto(field func(*core.Record) *core.Num) func(*core.Record, string) {
	return func(rec *core.Record, value string) { *field(rec) = core.ParseNumber(value) }
}

func textInto(field func(*core.Record) *string) func(*core.Record, string) {
	return func(rec *core.Record, value string) { *field(rec) = value }
}

var genericRules = []genericRule{
	// Scores need the keyword and "score" in the same header.
	{containsAll("forehand", "score"), numberInto(func(r *core.Record) *core.Num { return &r.StrengthForehandScore })},
	{containsAll("serve", "score"), numberInto(func(r *core.Record) *core.Num { return &r.StrengthServeScore })},
	{containsAll("volley", "score"), numberInto(func(r *core.Record) *core.Num { return &r.StrengthVolleyScore })},
	{containsAll("movement", "score"), numberInto(func(r *core.Record) *core.Num { return &r.StrengthMovementScore })},
	{containsAll("backhand", "score"), numberInto(func(r *core.Record) *core.Num { return &r.WeaknessBackhandScore })},
	{containsAll("consistency", "score"), numberInto(func(r *core.Record) *core.Num { return &r.WeaknessConsistencyScore })},
	{containsAll("pressure", "score"), numberInto(func(r *core.Record) *core.Num { return &r.WeaknessPressureScore })},

	{
		func(key string) bool { return strings.Contains(key, "style") || key == "playing style" },
		textInto(func(r *core.Record) *string { return &r.TacticalStyle }),
	},
	{containsAll("aggression"), numberInto(func(r *core.Record) *core.Num { return &r.AggressionIndex })},
	{containsAll("net", "approach"), numberInto(func(r *core.Record) *core.Num { return &r.NetApproachFrequency })},

	{containsAll("strength", "summary"), textInto(func(r *core.Record) *string { return &r.StrengthSummary })},
	{containsAll("weakness", "summary"), textInto(func(r *core.Record) *string { return &r.WeaknessSummary })},
	{containsAll("tactical", "summary"), textInto(func(r *core.Record) *string { return &r.TacticalSummary })},
	{containsAll("recommendation"), textInto(func(r *core.Record) *string { return &r.AIRecommendations })},
	{containsAll("training", "focus"), textInto(func(r *core.Record) *string { return &r.TrainingFocusAreas })},
}

// mapGeneric reads only the first data row; later rows are ignored.
func mapGeneric(t *core.Table) core.Record {
	var rec core.Record
	if len(t.Rows) == 0 {
		return rec
	}

	first := t.Rows[0]
	for _, header := range t.Headers {
		value, ok := first[header]
		if !ok {
			continue
		}
		key := strings.ToLower(header)
		for _, rule := range genericRules {
			if rule.match(key) {
				rule.apply(&rec, value)
				break
			}
		}
	}
	return rec
}
