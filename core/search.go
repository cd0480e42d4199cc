package core

import "sort"

// Span is a highlighted match: rune offsets [Start, End) from the document
// start, plus the same range as positions for renderers.
type Span struct {
	Start int
	End   int
	From  Position
	To    Position
}

// ColRange is a half-open column range on a single line.
type ColRange struct {
	Start int
	End   int
}

// FindAll returns the rune offsets of every case-sensitive, literal,
// non-overlapping occurrence of term in text, scanning left to right. After a
// match, scanning resumes at the end of that match.
func FindAll(text, term string) []Span {
	if term == "" {
		return nil
	}

	content := []rune(text)
	pattern := []rune(term)

	var spans []Span
	for i := 0; i+len(pattern) <= len(content); {
		if runesEqual(content[i:i+len(pattern)], pattern) {
			spans = append(spans, Span{Start: i, End: i + len(pattern)})
			i += len(pattern)
			continue
		}
		i++
	}
	return spans
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// locateSpans fills From and To for offsets that are already sorted, walking
// the buffer once.
func locateSpans(buffer Buffer, spans []Span) {
	if len(spans) == 0 {
		return
	}

	type target struct {
		offset int
		pos    *Position
	}
	targets := make([]target, 0, len(spans)*2)
	for i := range spans {
		targets = append(targets,
			target{spans[i].Start, &spans[i].From},
			target{spans[i].End, &spans[i].To},
		)
	}

	next := 0
	lineStart := 0
	for row := 0; row < buffer.LineCount() && next < len(targets); row++ {
		lineEnd := lineStart + buffer.LineRuneCount(row)
		for next < len(targets) && targets[next].offset <= lineEnd {
			*targets[next].pos = Position{Row: row, Col: targets[next].offset - lineStart}
			next++
		}
		lineStart = lineEnd + 1
	}
}

// Search clears the current highlights, then highlights every occurrence of
// term. An empty term leaves the highlight set empty.
func (e *editor) Search(term string) []Span {
	e.highlights = nil

	spans := FindAll(e.buffer.GetCurrentContent(), term)
	locateSpans(e.buffer, spans)
	e.highlights = spans

	e.DispatchSignal(SearchResultsSignal{term: term, spans: spans})
	return spans
}

func (e *editor) Highlights() []Span {
	return e.highlights
}

func (e *editor) ClearHighlights() {
	e.highlights = nil
}

// LineHighlights returns the highlighted column ranges on row. A span that
// runs past the end of the line covers the line break too, reported as one
// extra column.
func (e *editor) LineHighlights(row int) []ColRange {
	if len(e.highlights) == 0 {
		return nil
	}

	// First span that ends on or after this row.
	i := sort.Search(len(e.highlights), func(i int) bool {
		return e.highlights[i].To.Row >= row
	})

	lineLen := e.buffer.LineRuneCount(row)

	var ranges []ColRange
	for ; i < len(e.highlights); i++ {
		span := e.highlights[i]
		if span.From.Row > row {
			break
		}
		start, end := 0, lineLen+1
		if span.From.Row == row {
			start = span.From.Col
		}
		if span.To.Row == row {
			end = span.To.Col
		}
		if start < end {
			ranges = append(ranges, ColRange{Start: start, End: end})
		}
	}
	return ranges
}
