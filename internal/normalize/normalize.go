// Package normalize turns human-entered BVG station names into canonical display names.
//
// Raw names carry mode prefixes, city qualifiers and line codes:
//
//	S+U Neukölln (Berlin) [U7]      -> Neukölln
//	U AlexanderPlatz (Berlin) [U8]  -> AlexanderPlatz
//	U Bullowstr. (Berlin) [U55]     -> Bullowstr.
//	U Stadmitte U2                  -> Stadmitte
//	S+U Rathaus Steglitz (Bhf) [U9] -> Rathaus Steglitz
//
// A name made only of decoration, such as a bare "U5", normalizes to the empty
// string, which callers treat as "not a real station".
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// decoration matches every removable token in one pass. Alternatives are tried
// left to right at each position, so "S+U" wins over the bare "U" forms and a
// "U " prefix wins over a bare line code.
var decoration = regexp.MustCompile(strings.Join([]string{
	`S\+U`,
	`\bU\s`,
	`\(.*?\)`,
	`\[?\bU[0-9]*\b\]?`,
	`\bBerlin,`,
}, "|"))

// Name returns the canonical form of a raw station name.
func Name(raw string) string {
	cleaned := decoration.ReplaceAllString(norm.NFC.String(raw), "")
	return strings.Join(strings.Fields(cleaned), " ")
}
