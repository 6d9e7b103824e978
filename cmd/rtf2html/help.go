package main

import (
	"fmt"
	"io"
)

// printUsage writes the CLI usage text.
func printUsage(w io.Writer) {
	fmt.Fprintf(w, `rtf2html %s - convert RTF legal documents to styled HTML pages

Usage:
  rtf2html [flags] [input ...]

Inputs may be .rtf or .txt files, or directories to scan. Without inputs,
the document list from the configuration is converted.

Flags:
  -c, --config string            config file name or path
  -o, --output string            output file or directory
  -t, --title string             page title (single input only)
  -w, --workers int              parallel workers (0 = auto)
      --style string             embedded CSS style name
      --min-paragraphs int       quality floor for recovered paragraphs (0 = disable)
      --org string               organization name for the identity block
      --org-note string          incorporation statement under the organization name
      --back-link string         href of the bottom navigation link
      --back-link-label string   visible text of the bottom navigation link
      --no-back-link             omit the bottom navigation link
  -q, --quiet                    only show errors
  -v, --verbose                  show detailed timing

Examples:
  rtf2html "TERMS AND CONDITIONS OF SERVICE.txt"
  rtf2html -o site/ policies/
  rtf2html -c policies.yaml
`, Version)
}
