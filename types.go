package rtf2html

import "strings"

// Defaults for the rendered page identity block and navigation link.
const (
	DefaultOrganization     = "LOTUSLION VENTURE LLP"
	DefaultOrganizationNote = "(A Limited Liability Partnership incorporated under the Limited Liability Partnership Act, 2008)"
	DefaultBackLink         = "index.html"
	DefaultBackLinkLabel    = "← Back to Course"
)

// DefaultMinParagraphs is the quality floor: a legal document that recovers
// fewer paragraphs than this almost certainly lost content.
const DefaultMinParagraphs = 3

// Asset names resolved against the embedded asset set.
const (
	defaultStyleName    = "legal"
	defaultTemplateName = "page"
)

// Input contains conversion parameters.
type Input struct {
	RTF   string // Raw RTF content (required)
	Title string // Page title, shown as the H1 and in the title tag
}

// Emphasis identifies the typographic weight of a span.
type Emphasis int

// Emphasis kinds.
const (
	EmphasisNone Emphasis = iota
	EmphasisBold
	EmphasisItalic
)

// Span is a run of recovered text carrying a single emphasis kind.
type Span struct {
	Text     string
	Emphasis Emphasis
}

// Paragraph is an ordered sequence of spans. A paragraph is never empty or
// whitespace-only.
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

// Document is the recovered structure of one source file.
type Document struct {
	Paragraphs []Paragraph
}

// ConvertResult holds the rendered page and the structure it was built from.
type ConvertResult struct {
	HTML     []byte
	Document Document

	// Warnings flags input that exercised fragile source conventions.
	// The conversion still succeeded; the output deserves review.
	Warnings []string
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	organization     string
	organizationNote string
	backLink         string
	backLinkLabel    string
	style            string
	template         string
	minParagraphs    int
}

// WithOrganization sets the organization name shown in the page title
// suffix and the identity block.
func WithOrganization(name string) Option {
	return func(s *Service) {
		s.cfg.organization = name
	}
}

// WithOrganizationNote sets the italicized line under the organization
// name. An empty string omits the line.
func WithOrganizationNote(note string) Option {
	return func(s *Service) {
		s.cfg.organizationNote = note
	}
}

// WithBackLink sets the navigation link at the page bottom. An empty href
// omits the link.
func WithBackLink(href, label string) Option {
	return func(s *Service) {
		s.cfg.backLink = href
		s.cfg.backLinkLabel = label
	}
}

// WithStyle selects an embedded CSS style by name.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithMinParagraphs sets the quality floor for recovered documents.
// Conversions below the floor return ErrRecoveryQuality alongside the
// result. Zero disables the check.
func WithMinParagraphs(n int) Option {
	return func(s *Service) {
		s.cfg.minParagraphs = n
	}
}
