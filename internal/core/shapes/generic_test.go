package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func TestMapGeneric_AllFields(t *testing.T) {
	text := "Forehand Score,Serve Score,Volley Score,Movement Score,Backhand Score," +
		"Consistency Score,Pressure Score,Playing Style,Aggression,Net Approaches," +
		"Strength Summary,Weakness Summary,Tactical Summary,Recommendations,Training Focus\n" +
		"8,7.5,6,5,4,3,2,Aggressive Baseliner,7,15%," +
		"Big forehand,Backhand under pressure,Dictates from the baseline,Hit more crosscourt,Second serve\n"

	rec := mapGeneric(table(t, text))

	assert.Equal(t, core.Record{
		StrengthForehandScore:    core.NumOf(8),
		StrengthServeScore:       core.NumOf(7.5),
		StrengthVolleyScore:      core.NumOf(6),
		StrengthMovementScore:    core.NumOf(5),
		StrengthSummary:          "Big forehand",
		WeaknessBackhandScore:    core.NumOf(4),
		WeaknessConsistencyScore: core.NumOf(3),
		WeaknessPressureScore:    core.NumOf(2),
		WeaknessSummary:          "Backhand under pressure",
		TacticalStyle:            "Aggressive Baseliner",
		AggressionIndex:          core.NumOf(7),
		NetApproachFrequency:     core.NumOf(15),
		TacticalSummary:          "Dictates from the baseline",
		AIRecommendations:        "Hit more crosscourt",
		TrainingFocusAreas:       "Second serve",
	}, rec)
}

func TestMapGeneric_FirstRowOnly(t *testing.T) {
	rec := mapGeneric(table(t, "Forehand Score,Style\n6,Counterpuncher\n9,Serve and volley\n"))

	assert.Equal(t, core.NumOf(6), rec.StrengthForehandScore)
	assert.Equal(t, "Counterpuncher", rec.TacticalStyle)
}

func TestMapGeneric_RuleOrder(t *testing.T) {
	tests := []struct {
		name   string
		header string
		check  func(t *testing.T, rec core.Record)
	}{
		{
			// score rules come first, so this is not a tactical style
			name:   "score before style",
			header: "Serve Style Score",
			check: func(t *testing.T, rec core.Record) {
				assert.Equal(t, core.NumOf(4), rec.StrengthServeScore)
				assert.Empty(t, rec.TacticalStyle)
			},
		},
		{
			name:   "forehand before backhand",
			header: "Forehand vs Backhand Score",
			check: func(t *testing.T, rec core.Record) {
				assert.Equal(t, core.NumOf(4), rec.StrengthForehandScore)
				assert.True(t, rec.WeaknessBackhandScore.IsNull())
			},
		},
		{
			name:   "keyword without score is ignored",
			header: "Forehand",
			check: func(t *testing.T, rec core.Record) {
				assert.Equal(t, core.Record{}, rec)
			},
		},
		{
			name:   "net without approach is ignored",
			header: "Net Points",
			check: func(t *testing.T, rec core.Record) {
				assert.True(t, rec.NetApproachFrequency.IsNull())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, mapGeneric(table(t, tt.header+"\n4\n")))
		})
	}
}

func TestMapGeneric_UnparseableNumberIsNull(t *testing.T) {
	rec := mapGeneric(table(t, "Forehand Score,Aggression Level\nn/a,high\n"))

	assert.True(t, rec.StrengthForehandScore.IsNull())
	assert.True(t, rec.AggressionIndex.IsNull())
}

func TestMapGeneric_HeaderOnly(t *testing.T) {
	rec := mapGeneric(table(t, "Foo,Bar"))
	assert.Equal(t, core.Record{}, rec)
}
