package render

import (
	"testing"

	"github.com/lotuslion/go-rtf2html/internal/recovery"
)

func TestApplyRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()

	tests := []struct {
		name     string
		text     string
		wantBold string // concatenated bold text after rule application
	}{
		{
			name:     "whereas opener",
			text:     "WHEREAS the Client desires to engage the services.",
			wantBold: "WHEREAS",
		},
		{
			name:     "and whereas opener",
			text:     "AND WHEREAS the Company is willing to provide them.",
			wantBold: "AND WHEREAS",
		},
		{
			name:     "now therefore opener",
			text:     "NOW THEREFORE the parties agree as follows.",
			wantBold: "NOW THEREFORE",
		},
		{
			name:     "article header bolds whole paragraph",
			text:     "ARTICLE 1: DEFINITIONS AND INTERPRETATION",
			wantBold: "ARTICLE 1: DEFINITIONS AND INTERPRETATION",
		},
		{
			name:     "numbered section bolds lead",
			text:     "1.1 Definitions used in this agreement are binding.",
			wantBold: "1.1 Definitions",
		},
		{
			name:     "deep section number",
			text:     "2.3.4 Refunds are processed within thirty days.",
			wantBold: "2.3.4 Refunds",
		},
		{
			name:     "no rule matches",
			text:     "The parties acknowledge the terms above.",
			wantBold: "",
		},
		{
			name:     "whereas mid-paragraph is untouched",
			text:     "It is noted that WHEREAS clauses are recitals.",
			wantBold: "",
		},
		{
			name:     "plain article mention without colon",
			text:     "ARTICLE headings are for convenience only.",
			wantBold: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := applyRules(plainParagraph(tt.text), rules)

			var bold string
			for _, s := range p.Spans {
				if s.Emphasis == recovery.Bold {
					bold += s.Text
				}
			}
			if bold != tt.wantBold {
				t.Errorf("bold text = %q, want %q", bold, tt.wantBold)
			}
			if got := p.Text(); got != tt.text {
				t.Errorf("rule application changed text: %q -> %q", tt.text, got)
			}
		})
	}
}

func TestApplyRules_KeepsRecoveredEmphasis(t *testing.T) {
	t.Parallel()

	p := recovery.Paragraph{Spans: []recovery.Span{
		{Text: "WHEREAS ", Emphasis: recovery.None},
		{Text: "the parties", Emphasis: recovery.Italic},
		{Text: " agree.", Emphasis: recovery.None},
	}}

	got := applyRules(p, DefaultRules())

	// The italic span sits past the matched prefix and must keep its kind.
	var italic string
	for _, s := range got.Spans {
		if s.Emphasis == recovery.Italic {
			italic += s.Text
		}
	}
	if italic != "the parties" {
		t.Errorf("italic text = %q, want %q", italic, "the parties")
	}
}

func TestBoldPrefix_SplitsSpan(t *testing.T) {
	t.Parallel()

	p := plainParagraph("WHEREAS the parties agree.")
	got := boldPrefix(p, len("WHEREAS"))

	if len(got.Spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(got.Spans))
	}
	if got.Spans[0].Text != "WHEREAS" || got.Spans[0].Emphasis != recovery.Bold {
		t.Errorf("head span = %+v", got.Spans[0])
	}
	if got.Spans[1].Text != " the parties agree." || got.Spans[1].Emphasis != recovery.None {
		t.Errorf("tail span = %+v", got.Spans[1])
	}
}
