package core

import "strings"

// ratingVocabulary maps free-text ratings to the 0-10 scale.
var ratingVocabulary = map[string]float64{
	"excellent":     9.0,
	"very good":     8.0,
	"good":          7.0,
	"above average": 6.5,
	"average":       5.0,
	"below average": 4.0,
	"poor":          3.0,
	"very poor":     2.0,
}

// NormalizeRating converts a rating expression to the 0-10 scale.
//
// Checks run in a fixed order: fraction ("8/10" keeps the numerator),
// percentage ("80%" becomes 8; 0% is treated as missing), vocabulary
// ("Good"), then a bare number. Anything else is null.
func NormalizeRating(raw string) Num {
	rating := strings.TrimSpace(raw)
	if rating == "" {
		return NullNum()
	}

	if numerator, _, ok := strings.Cut(rating, "/"); ok {
		return ParseNumber(numerator)
	}

	if strings.Contains(rating, "%") {
		pct, ok := ParseNumber(strings.Replace(rating, "%", "", 1)).Get()
		if !ok || pct == 0 {
			return NullNum()
		}
		return NumOf(pct / 10)
	}

	if v, ok := ratingVocabulary[strings.ToLower(rating)]; ok {
		return NumOf(v)
	}

	return ParseNumber(rating)
}
