// Package render turns recovered documents into styled, self-contained HTML
// pages. The page shell is a fixed template with inline CSS; paragraph bodies
// are built span by span with contextual escaping so recovered text can never
// inject markup.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/lotuslion/go-rtf2html/internal/recovery"
)

// Options configures the fixed parts of every rendered page.
type Options struct {
	// Organization appears in the title suffix and the identity block.
	Organization string

	// OrganizationNote is the italicized line under the organization name,
	// typically the incorporation statement. Empty omits the line.
	OrganizationNote string

	// BackLink is the href of the navigation link at the page bottom.
	// Empty omits the link.
	BackLink string

	// BackLinkLabel is the visible text of the navigation link.
	BackLinkLabel string

	// Rules are the emphasis rules applied to each paragraph before
	// rendering. Nil means no rule-based emphasis.
	Rules []Rule
}

// Renderer renders documents against a parsed page template.
type Renderer struct {
	tmpl  *template.Template
	style template.CSS
	opts  Options
}

// New parses the page template and prepares a renderer. The style sheet is
// inlined into every page so the output has no external references.
func New(pageTemplate, style string, opts Options) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{
		tmpl:  tmpl,
		style: template.CSS(style),
		opts:  opts,
	}, nil
}

// pageData is the template's dot.
type pageData struct {
	Title            string
	Organization     string
	OrganizationNote string
	Style            template.CSS
	Paragraphs       []template.HTML
	BackLink         string
	BackLinkLabel    string
}

// Render produces the complete HTML page for a document. Paragraph order is
// preserved and every paragraph of the input appears in the output.
func (r *Renderer) Render(ctx context.Context, doc recovery.Document, title string) ([]byte, error) {
	paras := make([]template.HTML, 0, len(doc.Paragraphs))
	for _, p := range doc.Paragraphs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p = applyRules(p, r.opts.Rules)
		paras = append(paras, renderParagraph(p))
	}

	data := pageData{
		Title:            title,
		Organization:     r.opts.Organization,
		OrganizationNote: r.opts.OrganizationNote,
		Style:            r.style,
		Paragraphs:       paras,
		BackLink:         r.opts.BackLink,
		BackLinkLabel:    r.opts.BackLinkLabel,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderParagraph builds the inner HTML of a paragraph. Adjacent spans with
// the same emphasis merge into a single element, so each emphasis run opens
// and closes exactly once.
func renderParagraph(p recovery.Paragraph) template.HTML {
	spans := mergeSpans(p.Spans)

	var b strings.Builder
	for _, s := range spans {
		text := html.EscapeString(s.Text)
		switch s.Emphasis {
		case recovery.Bold:
			b.WriteString("<strong>")
			b.WriteString(text)
			b.WriteString("</strong>")
		case recovery.Italic:
			b.WriteString("<em>")
			b.WriteString(text)
			b.WriteString("</em>")
		default:
			b.WriteString(text)
		}
	}
	return template.HTML(b.String()) // #nosec G203 -- built from escaped spans only
}

// mergeSpans coalesces runs of spans sharing an emphasis kind.
func mergeSpans(spans []recovery.Span) []recovery.Span {
	if len(spans) < 2 {
		return spans
	}
	merged := make([]recovery.Span, 0, len(spans))
	for _, s := range spans {
		if n := len(merged); n > 0 && merged[n-1].Emphasis == s.Emphasis {
			merged[n-1].Text += s.Text
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
