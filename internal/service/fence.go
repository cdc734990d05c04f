package service

import "strings"

const (
	fenceMarker     = "```"
	jsonFenceMarker = "```json"
)

// ExtractFencedJSON isolates the JSON payload a model wrapped in a markdown
// code fence. Rules, first match wins:
//
//  1. a "```json" fence: text between it and the next "```", trimmed
//  2. any "```" fence: text between the first two markers, trimmed
//  3. no fence: text unchanged
//
// Exactly one block is ever selected: the opening marker plus the first
// marker after it. The result is not validated as JSON.
func ExtractFencedJSON(text string) string {
	offsets := fenceOffsets(text)
	if len(offsets) == 0 {
		return text
	}

	bodyStart := offsets[0] + len(fenceMarker)
	for _, off := range offsets {
		if strings.HasPrefix(text[off:], jsonFenceMarker) {
			bodyStart = off + len(jsonFenceMarker)
			break
		}
	}

	for _, off := range offsets {
		if off >= bodyStart {
			return strings.TrimSpace(text[bodyStart:off])
		}
	}
	// unterminated fence
	return strings.TrimSpace(text[bodyStart:])
}

// fenceOffsets returns every offset at which a fence marker starts, in
// order. Runs of more than three backticks yield overlapping offsets.
func fenceOffsets(text string) []int {
	var offsets []int
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], fenceMarker)
		if i == -1 {
			break
		}
		offsets = append(offsets, from+i)
		from += i + 1
	}
	return offsets
}
