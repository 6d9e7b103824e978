package rtf2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/lotuslion/go-rtf2html/internal/assets"
	"github.com/lotuslion/go-rtf2html/internal/recovery"
	"github.com/lotuslion/go-rtf2html/internal/render"
)

// recoverer extracts document structure from raw RTF.
type recoverer interface {
	Recover(ctx context.Context, raw string) recovery.Document
}

// documentRenderer produces the final HTML page.
type documentRenderer interface {
	Render(ctx context.Context, doc recovery.Document, title string) ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ recoverer        = (*recovery.Engine)(nil)
	_ documentRenderer = (*render.Renderer)(nil)
)

// Service orchestrates the RTF-to-HTML pipeline.
type Service struct {
	cfg      serviceConfig
	engine   recoverer
	renderer documentRenderer
}

// NewService creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOrganization).
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			organization:     DefaultOrganization,
			organizationNote: DefaultOrganizationNote,
			backLink:         DefaultBackLink,
			backLinkLabel:    DefaultBackLinkLabel,
			style:            defaultStyleName,
			template:         defaultTemplateName,
			minParagraphs:    DefaultMinParagraphs,
		},
		engine: recovery.NewEngine(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Build renderer if not injected (e.g., by tests)
	if s.renderer == nil {
		style, err := assets.LoadStyle(s.cfg.style)
		if err != nil {
			return nil, err
		}
		tmpl, err := assets.LoadTemplate(s.cfg.template)
		if err != nil {
			return nil, err
		}
		r, err := render.New(tmpl, style, render.Options{
			Organization:     s.cfg.organization,
			OrganizationNote: s.cfg.organizationNote,
			BackLink:         s.cfg.backLink,
			BackLinkLabel:    s.cfg.backLinkLabel,
			Rules:            render.DefaultRules(),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
		s.renderer = r
	}

	return s, nil
}

// Convert runs the full pipeline and returns the rendered page together
// with the recovered structure.
//
// A result below the configured paragraph floor is returned along with
// ErrRecoveryQuality; the HTML is complete and callers may still use it.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if strings.TrimSpace(input.RTF) == "" {
		return nil, ErrEmptyInput
	}

	doc := s.engine.Recover(ctx, input.RTF)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlBytes, err := s.renderer.Render(ctx, doc, input.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	result := &ConvertResult{
		HTML:     htmlBytes,
		Document: toPublicDocument(doc),
		Warnings: doc.Notes,
	}

	if s.cfg.minParagraphs > 0 && len(doc.Paragraphs) < s.cfg.minParagraphs {
		return result, fmt.Errorf("%w: recovered %d paragraph(s), expected at least %d",
			ErrRecoveryQuality, len(doc.Paragraphs), s.cfg.minParagraphs)
	}

	return result, nil
}

// Recover extracts document structure without rendering. Useful for
// callers that want the paragraphs and emphasis spans, not the page.
func (s *Service) Recover(ctx context.Context, raw string) (Document, []string, error) {
	if strings.TrimSpace(raw) == "" {
		return Document{}, nil, ErrEmptyInput
	}
	doc := s.engine.Recover(ctx, raw)
	if ctx.Err() != nil {
		return Document{}, nil, ctx.Err()
	}
	return toPublicDocument(doc), doc.Notes, nil
}

// toPublicDocument converts the internal recovery types to the public API.
func toPublicDocument(doc recovery.Document) Document {
	out := Document{Paragraphs: make([]Paragraph, len(doc.Paragraphs))}
	for i, p := range doc.Paragraphs {
		spans := make([]Span, len(p.Spans))
		for j, sp := range p.Spans {
			spans[j] = Span{Text: sp.Text, Emphasis: toPublicEmphasis(sp.Emphasis)}
		}
		out.Paragraphs[i] = Paragraph{Spans: spans}
	}
	return out
}

func toPublicEmphasis(e recovery.Emphasis) Emphasis {
	switch e {
	case recovery.Bold:
		return EmphasisBold
	case recovery.Italic:
		return EmphasisItalic
	default:
		return EmphasisNone
	}
}
