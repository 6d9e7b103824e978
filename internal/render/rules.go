package render

import (
	"regexp"

	"github.com/lotuslion/go-rtf2html/internal/recovery"
)

// Policy selects how a matching rule emphasizes a paragraph.
type Policy int

const (
	// PolicyBoldMatch bolds only the matched prefix of the paragraph.
	PolicyBoldMatch Policy = iota

	// PolicyBoldParagraph bolds the entire paragraph.
	PolicyBoldParagraph
)

// Rule pairs an anchored pattern with an emphasis policy. Patterns are
// matched against the paragraph's plain text; only matches at the start of
// the paragraph take effect.
type Rule struct {
	Pattern *regexp.Regexp
	Policy  Policy
}

// DefaultRules returns the emphasis rules for legal-document conventions:
// recital openers, article headers, and numbered section leads.
func DefaultRules() []Rule {
	return []Rule{
		{regexp.MustCompile(`^(?:AND WHEREAS|NOW THEREFORE|WHEREAS)\b`), PolicyBoldMatch},
		{regexp.MustCompile(`^ARTICLE\b[^:]*:`), PolicyBoldParagraph},
		{regexp.MustCompile(`^\d+(?:\.\d+)+\s+\S+`), PolicyBoldMatch},
	}
}

// applyRules applies the first rule whose pattern matches the paragraph's
// opening text. Rule emphasis only upgrades plain spans; emphasis recovered
// from the source is never overwritten.
func applyRules(p recovery.Paragraph, rules []Rule) recovery.Paragraph {
	text := p.Text()
	for _, rule := range rules {
		loc := rule.Pattern.FindStringIndex(text)
		if loc == nil || loc[0] != 0 {
			continue
		}
		switch rule.Policy {
		case PolicyBoldParagraph:
			return boldPrefix(p, len(text))
		default:
			return boldPrefix(p, loc[1])
		}
	}
	return p
}

// boldPrefix marks the first n bytes of the paragraph bold, splitting the
// span that straddles the boundary. Spans already carrying emphasis keep it.
func boldPrefix(p recovery.Paragraph, n int) recovery.Paragraph {
	out := recovery.Paragraph{Spans: make([]recovery.Span, 0, len(p.Spans)+1)}
	remaining := n
	for _, s := range p.Spans {
		if remaining <= 0 {
			out.Spans = append(out.Spans, s)
			continue
		}
		if len(s.Text) <= remaining {
			remaining -= len(s.Text)
			out.Spans = append(out.Spans, upgrade(s))
			continue
		}
		head := recovery.Span{Text: s.Text[:remaining], Emphasis: s.Emphasis}
		tail := recovery.Span{Text: s.Text[remaining:], Emphasis: s.Emphasis}
		remaining = 0
		out.Spans = append(out.Spans, upgrade(head), tail)
	}
	return out
}

func upgrade(s recovery.Span) recovery.Span {
	if s.Emphasis == recovery.None {
		s.Emphasis = recovery.Bold
	}
	return s
}
