// errors.go: user-facing error wrapping and caret-snippet rendering
//
// What this file does
// -------------------
// This module turns the pipeline's diagnostics into readable snippets with
// a caret pointing at the offending column. The primary entry point is
// `WrapErrorWithSource`, which recognizes any error carrying a Location
// (every *LexError, *ParseError and *RuntimeError does), formats it, and
// returns a new error whose message is a multi-line snippet:
//
//	[at 2:15] SyntaxError: Expected ')' after expression
//
//	   1 | var a = 1;
//	   2 | var x = (1 + 2;
//	     |               ^
//	   3 | print x;
//
// The snippet includes up to one line of context before and after the
// error, numbers the lines, and places a caret under the 1-based column.
//
// Behavior guarantees
// -------------------
//   - Errors without a Location are returned unchanged.
//   - Coordinates are 1-based and clamped to the available lines, so an
//     error placed one line past the end (the EOF position) still renders.
//   - Output is plain text; any coloring is the driver's business.
package loxi

import (
	"fmt"
	"strings"
)

/* ===========================
   PUBLIC API
   =========================== */

// Positioned is implemented by every diagnostic the pipeline produces, so
// callers can find the offending spot without inspecting the variant.
type Positioned interface {
	error
	Position() Location
}

// WrapErrorWithSource returns an error augmented with a caret-annotated
// snippet of the scanned lines (ScanResult.Lines). Errors that carry no
// location are returned untouched.
func WrapErrorWithSource(err error, lines []string) error {
	pe, ok := err.(Positioned)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", prettyErrorString(lines, err.Error(), pe.Position()))
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: rendering
   =========================== */

// prettyErrorString builds the snippet: the error's own message as header,
// then numbered context with a caret. It shows at most one previous and one
// next line when available. Out-of-range coordinates are clamped.
func prettyErrorString(lines []string, header string, loc Location) string {
	line, col := loc.Line, loc.Column
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}
	lineTxt := lines[line-1]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lineTxt)
	caretPad := col - 1
	if caretPad > len(lineTxt) {
		caretPad = len(lineTxt)
	}
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", caretPad))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
