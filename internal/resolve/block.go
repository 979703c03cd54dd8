package resolve

import (
	"regexp"
	"strings"
)

// Block is one git conflict region. Raw holds the exact original text
// including the markers so the region can be replaced verbatim.
type Block struct {
	CurrentRef   string
	CurrentText  string
	IncomingRef  string
	IncomingText string
	Raw          string
}

var blockPattern = regexp.MustCompile(`(?s)<<<<<<< ([^\n]+)\n(.*?)\n=======\n(.*?)\n>>>>>>> ([^\n]+)`)

// ParseBlocks extracts every conflict block from buffer, leftmost first
// and non-overlapping. A buffer without markers yields an empty slice.
// Malformed marker runs (missing separator, missing closing marker) are
// not matched and stay in the buffer untouched.
func ParseBlocks(buffer string) []Block {
	var blocks []Block
	for _, m := range blockPattern.FindAllStringSubmatch(buffer, -1) {
		blocks = append(blocks, Block{
			CurrentRef:   m[1],
			CurrentText:  m[2],
			IncomingText: m[3],
			IncomingRef:  m[4],
			Raw:          m[0],
		})
	}
	return blocks
}

// HasConflictMarkers reports whether buffer still contains conflict
// marker tokens. This is the gate a file must pass before it can be
// considered resolved.
func HasConflictMarkers(buffer string) bool {
	return strings.Contains(buffer, "<<<<<<< ") || strings.Contains(buffer, ">>>>>>> ")
}
