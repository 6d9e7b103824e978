package recovery

import "strings"

// minLineContent is the minimum visible rune count for a line to survive
// filtering. Shorter lines are orphan control fragments, not legal text.
const minLineContent = 3

// assembleParagraphs is the final recovery stage: it normalizes whitespace,
// filters orphan fragments, and folds the line stream into paragraphs.
// Consecutive non-break lines concatenate with single-space separation; a
// break sentinel (or blank line agreeing with it) flushes the accumulated
// paragraph. Empty paragraphs are never emitted.
func assembleParagraphs(content string) []Paragraph {
	var paras []Paragraph
	var frags []string

	flush := func() {
		if p, ok := buildParagraph(frags); ok {
			paras = append(paras, p)
		}
		frags = frags[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, paragraphBreak) {
			flush()
			continue
		}

		line = collapseSpaces(line)
		line = strings.TrimLeft(line, "* \t")

		if visibleLen(line) < minLineContent {
			// Too short to be content, but any emphasis markers on the
			// line still pair with markers downstream and must survive.
			if m := markersOnly(line); m != "" {
				frags = append(frags, m)
			}
			continue
		}
		frags = append(frags, line)
	}
	flush()

	return paras
}

// collapseSpaces reduces every whitespace run to a single space and trims
// the ends. Marker runes are not whitespace and pass through untouched.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// visibleLen counts content runes, ignoring emphasis markers.
func visibleLen(s string) int {
	n := 0
	for _, r := range s {
		if !isMarker(r) {
			n++
		}
	}
	return n
}

// markersOnly extracts just the emphasis markers from a line.
func markersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isMarker(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isMarker(r rune) bool {
	switch r {
	case markBoldOn, markBoldOff, markItalicOn, markItalicOff:
		return true
	}
	return false
}

// isMarkerOnly reports whether a fragment carries no visible content.
func isMarkerOnly(s string) bool {
	return visibleLen(strings.TrimSpace(s)) == 0
}

// buildParagraph joins accumulated line fragments and splits the result
// into emphasis spans. Marker-only fragments attach without a joining
// space so they do not open gaps inside words.
func buildParagraph(frags []string) (Paragraph, bool) {
	if len(frags) == 0 {
		return Paragraph{}, false
	}

	var b strings.Builder
	needSpace := false
	for _, f := range frags {
		if isMarkerOnly(f) {
			b.WriteString(markersOnly(f))
			continue
		}
		if needSpace {
			b.WriteByte(' ')
		}
		b.WriteString(f)
		needSpace = true
	}

	spans := buildSpans(b.String())
	if len(spans) == 0 {
		return Paragraph{}, false
	}
	return Paragraph{Spans: spans}, true
}

// buildSpans walks the marker-laden text and produces emphasis spans.
// An opening marker while another kind is open acts as close-then-open
// (nested emphasis is not representable); paragraph end closes whatever
// remains open, so every start has a matching end by construction.
func buildSpans(s string) []Span {
	var spans []Span
	var b strings.Builder
	current := None

	emit := func() {
		if b.Len() > 0 {
			spans = append(spans, Span{Text: b.String(), Emphasis: current})
			b.Reset()
		}
	}

	for _, r := range s {
		switch r {
		case markBoldOn:
			emit()
			current = Bold
		case markItalicOn:
			emit()
			current = Italic
		case markBoldOff, markItalicOff:
			emit()
			current = None
		default:
			b.WriteRune(r)
		}
	}
	emit()

	spans = trimSpans(spans)
	if !spansHaveContent(spans) {
		return nil
	}
	return spans
}

// trimSpans strips leading whitespace from the first span and trailing
// whitespace from the last, then drops spans left empty.
func trimSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return spans
	}
	spans[0].Text = strings.TrimLeft(spans[0].Text, " \t")
	spans[len(spans)-1].Text = strings.TrimRight(spans[len(spans)-1].Text, " \t")

	out := spans[:0]
	for _, s := range spans {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out
}

func spansHaveContent(spans []Span) bool {
	for _, s := range spans {
		if strings.TrimSpace(s.Text) != "" {
			return true
		}
	}
	return false
}
