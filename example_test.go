package rtf2html_test

import (
	"context"
	"fmt"
	"log"

	rtf2html "github.com/lotuslion/go-rtf2html"
)

func ExampleService_Convert() {
	svc, err := rtf2html.NewService(
		rtf2html.WithOrganization("LOTUSLION VENTURE LLP"),
		rtf2html.WithMinParagraphs(0),
	)
	if err != nil {
		log.Fatal(err)
	}

	raw := `\pard\f0\b\fs24 WHEREAS the parties agree\f1\b0 as follows.` +
		`\pard The services commence upon enrollment.`

	result, err := svc.Convert(context.Background(), rtf2html.Input{
		RTF:   raw,
		Title: "TERMS AND CONDITIONS OF SERVICE",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range result.Document.Paragraphs {
		fmt.Println(p.Text())
	}
	// Output:
	// WHEREAS the parties agree as follows.
	// The services commence upon enrollment.
}

func ExampleService_Recover() {
	svc, err := rtf2html.NewService()
	if err != nil {
		log.Fatal(err)
	}

	doc, _, err := svc.Recover(context.Background(), `\pard\f2\i Force majeure\f1\i0  excuses delay.`)
	if err != nil {
		log.Fatal(err)
	}

	for _, span := range doc.Paragraphs[0].Spans {
		fmt.Printf("%d %q\n", span.Emphasis, span.Text)
	}
	// Output:
	// 2 "Force majeure"
	// 0 " excuses delay."
}
