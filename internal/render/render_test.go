package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/lotuslion/go-rtf2html/internal/assets"
	"github.com/lotuslion/go-rtf2html/internal/recovery"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()

	style, err := assets.LoadStyle("legal")
	if err != nil {
		t.Fatalf("loading style: %v", err)
	}
	tmpl, err := assets.LoadTemplate("page")
	if err != nil {
		t.Fatalf("loading template: %v", err)
	}
	r, err := New(tmpl, style, opts)
	if err != nil {
		t.Fatalf("creating renderer: %v", err)
	}
	return r
}

func plainParagraph(text string) recovery.Paragraph {
	return recovery.Paragraph{Spans: []recovery.Span{{Text: text}}}
}

// findAll walks the parsed tree collecting elements with the given tag.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestRenderer_Render_PageStructure(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, Options{
		Organization:     "LOTUSLION VENTURE LLP",
		OrganizationNote: "(A Limited Liability Partnership)",
		BackLink:         "index.html",
		BackLinkLabel:    "← Back to Course",
	})

	doc := recovery.Document{Paragraphs: []recovery.Paragraph{
		plainParagraph("This agreement governs the services."),
		plainParagraph("Payment is due upon enrollment."),
	}}

	out, err := r.Render(context.Background(), doc, "TERMS AND CONDITIONS OF SERVICE")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	root, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}

	titles := findAll(root, "title")
	if len(titles) != 1 {
		t.Fatalf("got %d title elements, want 1", len(titles))
	}
	if got, want := textContent(titles[0]), "TERMS AND CONDITIONS OF SERVICE - LOTUSLION VENTURE LLP"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}

	h1s := findAll(root, "h1")
	if len(h1s) != 1 || textContent(h1s[0]) != "TERMS AND CONDITIONS OF SERVICE" {
		t.Errorf("h1 missing or wrong: %v", h1s)
	}

	// Identity block contributes two paragraphs ahead of the document's own.
	ps := findAll(root, "p")
	if got, want := len(ps), 2+len(doc.Paragraphs); got != want {
		t.Errorf("got %d p elements, want %d", got, want)
	}

	anchors := findAll(root, "a")
	if len(anchors) != 1 {
		t.Fatalf("got %d anchors, want 1", len(anchors))
	}
	if got := attr(anchors[0], "href"); got != "index.html" {
		t.Errorf("back link href = %q, want %q", got, "index.html")
	}
	if got := textContent(anchors[0]); got != "← Back to Course" {
		t.Errorf("back link label = %q", got)
	}

	if !strings.Contains(string(out), "Times New Roman") {
		t.Error("inline style sheet missing from output")
	}
}

func TestRenderer_Render_OmitsOptionalParts(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, Options{Organization: "ACME LLP"})

	doc := recovery.Document{Paragraphs: []recovery.Paragraph{
		plainParagraph("Only clause."),
	}}

	out, err := r.Render(context.Background(), doc, "REFUND POLICY")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	root, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	if anchors := findAll(root, "a"); len(anchors) != 0 {
		t.Errorf("got %d anchors, want 0 without a back link", len(anchors))
	}
	if ems := findAll(root, "em"); len(ems) != 0 {
		t.Errorf("got %d em elements, want 0 without an organization note", len(ems))
	}
}

func TestRenderer_Render_EmphasisSpans(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, Options{Organization: "ACME LLP"})

	doc := recovery.Document{Paragraphs: []recovery.Paragraph{
		{Spans: []recovery.Span{
			{Text: "The doctrine of ", Emphasis: recovery.None},
			{Text: "force majeure", Emphasis: recovery.Italic},
			{Text: " applies ", Emphasis: recovery.None},
			{Text: "strictly", Emphasis: recovery.Bold},
			{Text: ".", Emphasis: recovery.None},
		}},
	}}

	out, err := r.Render(context.Background(), doc, "TERMS")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	root, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}

	ems := findAll(root, "em")
	if len(ems) != 1 || textContent(ems[0]) != "force majeure" {
		t.Errorf("em elements = %v, want one with %q", ems, "force majeure")
	}
	strongs := findAll(root, "strong")
	var found bool
	for _, s := range strongs {
		if textContent(s) == "strictly" {
			found = true
		}
	}
	if !found {
		t.Errorf("no strong element with text %q", "strictly")
	}
}

func TestRenderer_Render_EscapesContent(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, Options{Organization: "ACME LLP"})

	doc := recovery.Document{Paragraphs: []recovery.Paragraph{
		plainParagraph(`Fees < 500 & payable "promptly" per <schedule>.`),
	}}

	out, err := r.Render(context.Background(), doc, "TERMS")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(string(out), "<schedule>") {
		t.Error("recovered text was not escaped")
	}

	root, err := html.Parse(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	body := findAll(root, "body")[0]
	if !strings.Contains(textContent(body), `Fees < 500 & payable "promptly" per <schedule>.`) {
		t.Error("escaped text does not round-trip through an HTML parser")
	}
}

func TestRenderer_Render_ContextCancellation(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t, Options{Organization: "ACME LLP"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := recovery.Document{Paragraphs: []recovery.Paragraph{plainParagraph("Clause.")}}
	if _, err := r.Render(ctx, doc, "TERMS"); err == nil {
		t.Error("Render with cancelled context did not fail")
	}
}

func TestMergeSpans(t *testing.T) {
	t.Parallel()

	spans := []recovery.Span{
		{Text: "WHEREAS", Emphasis: recovery.Bold},
		{Text: " the parties", Emphasis: recovery.Bold},
		{Text: " agree.", Emphasis: recovery.None},
	}

	merged := mergeSpans(spans)
	if len(merged) != 2 {
		t.Fatalf("got %d spans, want 2", len(merged))
	}
	if merged[0].Text != "WHEREAS the parties" || merged[0].Emphasis != recovery.Bold {
		t.Errorf("merged[0] = %+v", merged[0])
	}
}
