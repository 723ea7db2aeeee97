package shapes

import (
	"strings"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func init() {
	registerSummary()
}

func registerSummary() {
	core.Register(core.ShapeDefinition{
		Shape:       core.ShapeSummary,
		Priority:    prioritySummary,
		Description: "one row per metric with value and rating columns",
		Match:       isSummary,
		Map:         mapSummary,
	})
}

// summaryHeaders must each be contained in at least one header.
var summaryHeaders = []string{"metric", "value", "rating"}

func isSummary(headers []string) bool {
	for _, h := range summaryHeaders {
		if !anyHeaderContains(headers, h) {
			return false
		}
	}
	return true
}

type metricEntry struct {
	value  string
	rating string
}

type metricLookup map[string]metricEntry

// first returns the entry for the first alias present in the lookup.
func (m metricLookup) first(aliases ...string) (metricEntry, bool) {
	for _, a := range aliases {
		if e, ok := m[a]; ok {
			return e, true
		}
	}
	return metricEntry{}, false
}

// summaryRule routes one metric, found under any of its aliases, into the record.
type summaryRule struct {
	aliases []string
	apply   func(rec *core.Record, e metricEntry)
}

var summaryRules = []summaryRule{
	{
		aliases: []string{"forehand"},
		apply:   func(rec *core.Record, e metricEntry) { rec.StrengthForehandScore = core.NormalizeRating(e.rating) },
	},
	{
		aliases: []string{"serve"},
		apply:   func(rec *core.Record, e metricEntry) { rec.StrengthServeScore = core.NormalizeRating(e.rating) },
	},
	{
		aliases: []string{"volley"},
		apply:   func(rec *core.Record, e metricEntry) { rec.StrengthVolleyScore = core.NormalizeRating(e.rating) },
	},
	{
		aliases: []string{"movement", "footwork"},
		apply:   func(rec *core.Record, e metricEntry) { rec.StrengthMovementScore = core.NormalizeRating(e.rating) },
	},
	// A strong stroke is a small weakness, so the rating is inverted.
	{
		aliases: []string{"backhand"},
		apply: func(rec *core.Record, e metricEntry) {
			rec.WeaknessBackhandScore = core.NormalizeRating(e.rating).SubFrom(10)
		},
	},
	{
		aliases: []string{"consistency"},
		apply: func(rec *core.Record, e metricEntry) {
			rec.WeaknessConsistencyScore = core.NormalizeRating(e.rating).SubFrom(10)
		},
	},
	{
		aliases: []string{"aggression", "aggression index"},
		apply:   func(rec *core.Record, e metricEntry) { rec.AggressionIndex = core.ParseNumber(e.value) },
	},
	{
		aliases: []string{"net approach", "net play"},
		apply:   func(rec *core.Record, e metricEntry) { rec.NetApproachFrequency = core.ParseNumber(e.value) },
	},
}

// mapSummary builds a lookup keyed by lower-cased metric name (later rows
// win) and applies each rule whose metric is present.
func mapSummary(t *core.Table) core.Record {
	metrics := make(metricLookup, len(t.Rows))
	for _, row := range t.Rows {
		metric := row.First("metric", "Metric")
		metrics[strings.ToLower(metric)] = metricEntry{
			value:  row.First("value", "Value"),
			rating: row.First("rating", "Rating"),
		}
	}

	var rec core.Record
	for _, rule := range summaryRules {
		if e, ok := metrics.first(rule.aliases...); ok {
			rule.apply(&rec, e)
		}
	}
	return rec
}
