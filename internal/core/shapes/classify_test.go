package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    core.Shape
	}{
		{"summary", []string{"Metric", "Value", "Rating"}, core.ShapeSummary},
		{"summary wins over detailed", []string{"Metric", "Value", "Rating", "Shot Type", "Count", "Winners", "Errors"}, core.ShapeSummary},
		{"detailed", []string{"Shot Type", "Count", "Winners", "Errors"}, core.ShapeDetailed},
		{"detailed by one header", []string{"Player", "Errors"}, core.ShapeDetailed},
		{"generic", []string{"Foo", "Bar"}, core.ShapeGeneric},
		{"generic with no headers", []string{""}, core.ShapeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := core.Classify(tt.headers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, def.Shape)
		})
	}
}

func TestRegisteredShapes(t *testing.T) {
	defs := core.Definitions()
	require.Len(t, defs, 3)

	assert.Equal(t, core.ShapeSummary, defs[0].Shape)
	assert.Equal(t, core.ShapeDetailed, defs[1].Shape)
	assert.Equal(t, core.ShapeGeneric, defs[2].Shape)
	for _, def := range defs {
		assert.NotEmpty(t, def.Description, def.Shape.String())
	}
}

// Every shape maps a header-only table to the default record.
func TestHeaderOnlyYieldsDefaults(t *testing.T) {
	for _, header := range []string{
		"Metric,Value,Rating",
		"Shot Type,Count,Winners,Errors",
		"Forehand Score,Playing Style",
	} {
		tbl := table(t, header)
		def, err := core.Classify(tbl.Headers)
		require.NoError(t, err)
		assert.Equal(t, core.Record{}, def.Map(tbl), header)
	}
}
