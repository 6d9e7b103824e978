// Package rtf2html converts legal documents authored in RTF into styled,
// self-contained HTML pages.
//
// The package exists to republish legal text (terms of service, privacy
// policies, refund policies) verbatim: every content character of the source
// survives conversion, only formatting control words are stripped. Paragraph
// boundaries and bold/italic emphasis are recovered from the RTF control
// stream and re-expressed as HTML markup.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc, err := rtf2html.NewService(
//	    rtf2html.WithOrganization("LOTUSLION VENTURE LLP"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Convert(ctx, rtf2html.Input{
//	    RTF:   string(raw),
//	    Title: "TERMS AND CONDITIONS OF SERVICE",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("terms.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markup recovery (preamble elimination, paragraph-boundary recovery,
//     emphasis recovery, special-character substitution, residual control
//     stripping)
//  2. Paragraph assembly with whitespace normalization
//  3. HTML rendering via a fixed page template with legal-keyword
//     emphasis rules
//
// Recovery never fails on malformed input; unrecognized control words are
// treated as residual noise and stripped. Inputs that exercise ambiguous
// separator conventions are flagged in ConvertResult.Warnings for review.
//
// # Parallel Processing
//
// Each conversion is a pure function of its input, so batches can be
// processed in parallel. Use ServicePool to share configured services
// across workers:
//
//	pool := rtf2html.NewServicePool(4)
//	svc := pool.Acquire()
//	defer pool.Release(svc)
package rtf2html
