package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// minParagraphsSentinel detects if --min-paragraphs was explicitly set.
// Since 0 is a valid value (check disabled), we use a negative sentinel.
const minParagraphsSentinel = -1

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page identity and navigation flags.
type pageFlags struct {
	org           string
	orgNote       string
	backLink      string
	backLinkLabel string
	noBackLink    bool
}

// convertFlags holds all flags for a conversion run.
type convertFlags struct {
	common        commonFlags
	page          pageFlags
	output        string
	workers       int
	title         string
	style         string
	minParagraphs int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page identity flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.org, "org", "", "organization name for the identity block")
	fs.StringVar(&f.orgNote, "org-note", "", "incorporation statement under the organization name")
	fs.StringVar(&f.backLink, "back-link", "", "href of the bottom navigation link")
	fs.StringVar(&f.backLinkLabel, "back-link-label", "", "visible text of the bottom navigation link")
	fs.BoolVar(&f.noBackLink, "no-back-link", false, "omit the bottom navigation link")
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("rtf2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.title, "title", "t", "", "page title (single input only)")
	fs.StringVar(&f.style, "style", "", "embedded CSS style name")
	fs.IntVar(&f.minParagraphs, "min-paragraphs", minParagraphsSentinel, "quality floor for recovered paragraphs (0 = disable)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
