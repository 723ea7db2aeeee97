// Package core turns exported match statistics into a canonical player
// analysis record.
//
// The package holds the whole detection and mapping engine and no transport
// code. It is used by the HTTP server, the swingparse command, and tests
// without modification.
//
// # Pipeline
//
// A parse runs these steps, all in memory:
//
//  1. [Service.Parse] takes a parse slot from the [ParseLimiter], if any
//  2. The source is read up to the size limit, a UTF-8 BOM is dropped and
//     invalid UTF-8 replaced
//  3. Workbooks (.xlsx) go through [TableFromWorkbook]; text goes through
//     [SplitLines], [SplitFields] and [BuildTable]
//  4. [Classify] picks the first registered shape whose Match accepts the
//     headers
//  5. The shape's Map builds the [Record]
//
// # Shape Registry
//
// Shapes are registered at init time using [Register], the same way the
// shapes package does it:
//
//	core.Register(core.ShapeDefinition{
//	    Shape:    core.ShapeSummary,
//	    Priority: 10,
//	    Match:    isSummary,
//	    Map:      mapSummary,
//	})
//
// Lower priorities are tried first. The generic shape matches everything and
// is registered last, so classification never fails once it is present.
//
// # Missing Values
//
// Numeric record fields are [Num] values. Anything that cannot be read as a
// number is null rather than zero, and arithmetic on null stays null
// ([Num.SubFrom]). Malformed rows are dropped and counted, never fatal.
//
// # Error Handling
//
// Fatal errors are [ErrEmptyInput], [ErrFileTooLarge], [ReadError], and
// limiter or context errors. [MapError] turns any of them into a
// [UserMessage] with a support code:
//
//   - FILE001-FILE006: File errors (size, workbook, missing, empty, read)
//   - PRS001: No shape registered
//   - UPL002-UPL005: Capacity and request errors (busy, cancelled, timeout)
package core
