// Package recovery implements the markup recovery engine: it consumes raw
// RTF text and produces an ordered sequence of plain-text paragraphs with
// bold/italic emphasis spans, discarding all control information.
//
// The engine is a fixed-order staged pipeline. Later stages assume earlier
// ones have already removed structural noise, so the order is not
// configurable. Recovery is pure and never fails: malformed input degrades
// gracefully into residual-noise stripping rather than errors, because the
// priority is preserving as much original text as possible.
package recovery

import (
	"context"
	"strings"
)

// Emphasis identifies the typographic weight of a span.
type Emphasis int

// Emphasis kinds. The source format never nests one kind inside the other:
// opening a new kind while one is open closes the previous one first.
const (
	None Emphasis = iota
	Bold
	Italic
)

// Span is a run of recovered text carrying a single emphasis kind.
type Span struct {
	Text     string
	Emphasis Emphasis
}

// Paragraph is an ordered sequence of spans. Invariants: a paragraph is
// never empty or whitespace-only, and it never contains a paragraph break.
type Paragraph struct {
	Spans []Span
}

// Text returns the paragraph's visible text with emphasis boundaries erased.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Document is the engine's output: ordered paragraphs plus advisory notes
// about ambiguous constructs encountered during recovery.
type Document struct {
	Paragraphs []Paragraph

	// Notes flags input that exercised fragile conventions (for example
	// stray escape characters interpreted as line breaks). Advisory only;
	// the recovered text is still returned.
	Notes []string
}

// Engine recovers structured documents from raw RTF text.
// The zero value is ready to use.
type Engine struct{}

// NewEngine creates a recovery engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Recover transforms raw RTF into a Document. It applies the recovery
// stages in fixed order: preamble elimination, paragraph-boundary recovery,
// emphasis recovery, special-character substitution, residual control
// stripping, and finally whitespace normalization with paragraph assembly.
//
// Recover is a pure function of its input and never fails; the context is
// checked between stages and a partial Document is returned on cancellation.
func (e *Engine) Recover(ctx context.Context, raw string) Document {
	var doc Document

	cp := detectCodePage(raw)

	content := stripPreamble(raw)
	if ctx.Err() != nil {
		return doc
	}

	content = markParagraphBreaks(content)
	content = markEmphasis(content)
	if ctx.Err() != nil {
		return doc
	}

	content = substituteEscapes(content, cp)
	content, notes := stripResidualControls(content)
	doc.Notes = notes
	if ctx.Err() != nil {
		return doc
	}

	doc.Paragraphs = assembleParagraphs(content)
	return doc
}
