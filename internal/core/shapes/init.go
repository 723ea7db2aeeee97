// Package shapes registers all shape definitions with the core registry.
// Import this package to ensure all shapes are registered.
package shapes

import "strings"

// Classification order. Summary is checked before Detailed because a
// summary export may also carry shot-type-like columns.
const (
	prioritySummary  = 10
	priorityDetailed = 20
	priorityGeneric  = 1000
)

// anyHeaderContains reports whether some header contains sub, ignoring case.
// sub must be lower case.
func anyHeaderContains(headers []string, sub string) bool {
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), sub) {
			return true
		}
	}
	return false
}
