package shapes

import (
	"strings"

	"github.com/JonMunkholm/swingimport/internal/core"
)

func init() {
	registerDetailed()
}

func registerDetailed() {
	core.Register(core.ShapeDefinition{
		Shape:       core.ShapeDetailed,
		Priority:    priorityDetailed,
		Description: "per shot type counts with winners and errors",
		Match:       isDetailed,
		Map:         mapDetailed,
	})
}

// detailedHeaders: any single one is enough.
var detailedHeaders = []string{"shot type", "count", "winners", "errors"}

func isDetailed(headers []string) bool {
	for _, h := range detailedHeaders {
		if anyHeaderContains(headers, h) {
			return true
		}
	}
	return false
}

// shotTotals accumulates one stroke bucket.
type shotTotals struct {
	winners int
	errors  int
	total   int
}

func (s *shotTotals) add(count, winners, errors int) {
	s.winners += winners
	s.errors += errors
	s.total += count
}

// score is 5 plus ten times the net winner ratio, clamped to [0, 10].
// sign flips the ratio for weakness scores, where errors count up.
// Null when no shots were recorded.
func (s shotTotals) score(sign float64) core.Num {
	if s.total <= 0 {
		return core.NullNum()
	}
	ratio := sign * float64(s.winners-s.errors) / float64(s.total)
	return core.NumOf(core.Clamp(5+ratio*10, 0, 10))
}

// Bucket order matters: a label is counted in the first bucket it mentions.
const (
	bucketForehand = iota
	bucketBackhand
	bucketServe
	bucketVolley
	bucketCount
)

var bucketKeywords = [bucketCount]string{"forehand", "backhand", "serve", "volley"}

func mapDetailed(t *core.Table) core.Record {
	var (
		buckets       [bucketCount]shotTotals
		netApproaches int
	)

	for _, row := range t.Rows {
		shotType := strings.ToLower(row.First("shot type", "Shot Type"))
		count := core.ParseCount(row.First("count", "Count"))
		winners := core.ParseCount(row.First("winners", "Winners"))
		errors := core.ParseCount(row.First("errors", "Errors"))

		for b, kw := range bucketKeywords {
			if strings.Contains(shotType, kw) {
				buckets[b].add(count, winners, errors)
				break
			}
		}

		// Volleys are net play too, so they also land here.
		if strings.Contains(shotType, "net") || strings.Contains(shotType, "volley") {
			netApproaches += count
		}
	}

	var rec core.Record
	rec.StrengthForehandScore = buckets[bucketForehand].score(1)
	rec.WeaknessBackhandScore = buckets[bucketBackhand].score(-1)
	rec.StrengthServeScore = buckets[bucketServe].score(1)
	rec.StrengthVolleyScore = buckets[bucketVolley].score(1)

	totalShots := 0
	for _, b := range buckets {
		totalShots += b.total
	}
	if totalShots > 0 {
		rec.NetApproachFrequency = core.NumOf(float64(netApproaches) / float64(totalShots) * 100)
	}

	return rec
}
