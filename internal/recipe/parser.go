package recipe

import (
	"regexp"
	"strings"

	"github.com/cyberarsenal/cyberarsenal/internal/logging"
)

// placeholderPattern matches "prefix<inner>suffix" where inner may hold one
// '|' separating the placeholder name from its default value.
const placeholderPattern = `^(.*)<([A-Za-z0-9\-.:'!@#$%^&*(){}\[\]/|_=+]+)>(.*)$`

var placeholderRe, placeholderErr = regexp.Compile(placeholderPattern)

// ParseWord splits one whitespace-free word into segments whose ids start at
// startID. It always returns at least one segment.
//
// The word is cut after every '>' and each piece is matched on its own.
// Literal text found between two placeholders is attached to the suffix of
// the earlier one, and text after the last placeholder is attached to the
// suffix of the last one, so concatenating the segments gives the word back.
func ParseWord(startID int, word string) []Segment {
	if placeholderErr != nil {
		logging.Debug("recipe: placeholder pattern unavailable, keeping word literal",
			"word", word, "error", placeholderErr)
		return []Segment{literalSegment(startID, word)}
	}

	pieces := strings.SplitAfter(word, ">")
	tail := ""
	if last := pieces[len(pieces)-1]; !strings.Contains(last, ">") {
		tail = last
		pieces = pieces[:len(pieces)-1]
	}

	var segments []Segment
	pending := ""
	for _, piece := range pieces {
		match := placeholderRe.FindStringSubmatch(piece)
		if match == nil {
			// No placeholder of its own; keep the text for a neighbour.
			pending += piece
			continue
		}
		prefix := pending + match[1]
		pending = ""
		if len(segments) > 0 {
			segments[len(segments)-1].Suffix += prefix
			prefix = ""
		}
		segment := placeholderSegment(match[2])
		segment.Prefix = prefix
		segment.Suffix = match[3]
		segments = append(segments, segment)
	}

	if len(segments) == 0 {
		return []Segment{literalSegment(startID, word)}
	}

	last := len(segments) - 1
	segments[last].Suffix += pending + tail
	for i := range segments {
		segments[i].ID = startID + i
		segments[i].TrailingSpace = i == last
	}
	return segments
}

// Build parses a whole template. Ids run from 0 across all words.
func Build(rawArgs string) []Segment {
	var segments []Segment
	nextID := 0
	for _, word := range strings.Fields(rawArgs) {
		parsed := ParseWord(nextID, word)
		nextID += len(parsed)
		segments = append(segments, parsed...)
	}
	return segments
}

func placeholderSegment(inner string) Segment {
	parts := strings.SplitN(inner, "|", 2)
	segment := Segment{
		Kind:  KindPlaceholder,
		Value: "<" + parts[0] + ">",
	}
	if len(parts) == 2 {
		segment.Default = parts[1]
		segment.HasDefault = true
	}
	return segment
}

func literalSegment(id int, word string) Segment {
	return Segment{
		ID:            id,
		Kind:          KindLiteral,
		Value:         word,
		TrailingSpace: true,
	}
}
