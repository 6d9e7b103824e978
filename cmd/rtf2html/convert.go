package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	rtf2html "github.com/lotuslion/go-rtf2html"
	"github.com/lotuslion/go-rtf2html/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadRTF            = errors.New("failed to read RTF file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .rtf or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrTitleWithBatch     = errors.New("--title requires exactly one input file")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Title      string
}

// run orchestrates the conversion process: config loading, input
// discovery, pool construction, and the batch itself.
func run(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve files to convert
	files, err := resolveFiles(positionalArgs, flags, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoInput
	}
	if flags.title != "" && len(files) != 1 {
		return fmt.Errorf("%w: got %d", ErrTitleWithBatch, len(files))
	}

	// Build service options from the merged config
	opts := serviceOptions(flags, cfg)

	poolSize := rtf2html.ResolvePoolSize(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := rtf2html.NewServicePool(poolSize, opts...)

	results := convertBatch(ctx, &servicePool{pool}, files)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.page.org != "" {
		cfg.Page.Organization = flags.page.org
	}
	if flags.page.orgNote != "" {
		cfg.Page.OrganizationNote = flags.page.orgNote
	}
	if flags.page.backLink != "" {
		cfg.Page.BackLink = flags.page.backLink
	}
	if flags.page.backLinkLabel != "" {
		cfg.Page.BackLinkLabel = flags.page.backLinkLabel
	}
	if flags.page.noBackLink {
		cfg.Page.BackLink = ""
	}
	if flags.minParagraphs != minParagraphsSentinel {
		cfg.Recovery.MinParagraphs = flags.minParagraphs
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// serviceOptions builds library options from the merged configuration.
func serviceOptions(flags *convertFlags, cfg *config.Config) []rtf2html.Option {
	opts := []rtf2html.Option{
		rtf2html.WithOrganization(cfg.Page.Organization),
		rtf2html.WithOrganizationNote(cfg.Page.OrganizationNote),
		rtf2html.WithBackLink(cfg.Page.BackLink, cfg.Page.BackLinkLabel),
		rtf2html.WithMinParagraphs(cfg.Recovery.MinParagraphs),
	}
	if flags.style != "" {
		opts = append(opts, rtf2html.WithStyle(flags.style))
	}
	return opts
}

// resolveFiles determines what to convert. Positional arguments take
// precedence; without them the config's document list is used.
func resolveFiles(args []string, flags *convertFlags, cfg *config.Config) ([]FileToConvert, error) {
	if len(args) == 0 {
		return filesFromConfig(cfg)
	}

	var files []FileToConvert
	for _, arg := range args {
		discovered, err := discoverFiles(arg, flags.output)
		if err != nil {
			return nil, err
		}
		files = append(files, discovered...)
	}

	if flags.title != "" && len(files) == 1 {
		files[0].Title = flags.title
	}

	return files, nil
}

// filesFromConfig builds the conversion list from config document entries.
func filesFromConfig(cfg *config.Config) ([]FileToConvert, error) {
	files := make([]FileToConvert, 0, len(cfg.Documents))
	for _, d := range cfg.Documents {
		out := d.Output
		if out == "" {
			out = htmlOutputPath(d.Input, "")
		}
		title := d.Title
		if title == "" {
			title = deriveTitle(d.Input)
		}
		files = append(files, FileToConvert{InputPath: d.Input, OutputPath: out, Title: title})
	}
	return files, nil
}

// discoverFiles finds RTF files under the given path. A file argument is
// used directly; a directory is walked for .rtf and .txt files.
func discoverFiles(inputPath, output string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateRTFExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, output, "")
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: outPath,
			Title:      deriveTitle(inputPath),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !hasRTFExtension(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, output, inputPath),
			Title:      deriveTitle(path),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a source file.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	if output == "" {
		return htmlOutputPath(inputPath, "")
	}

	if strings.HasSuffix(output, ".html") {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return htmlOutputPath(relPath, output)
		}
	}

	return htmlOutputPath(filepath.Base(inputPath), output)
}

// htmlOutputPath swaps the source extension for .html, optionally placing
// the result under dir.
func htmlOutputPath(inputPath, dir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext) + ".html"
	if dir == "" {
		return base
	}
	return filepath.Join(dir, base)
}

// deriveTitle uses the source filename, minus extension, as the page title.
// The published legal documents carry their titles as filenames.
func deriveTitle(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// validateRTFExtension checks that the file has a supported extension.
func validateRTFExtension(path string) error {
	if !hasRTFExtension(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// hasRTFExtension reports whether the path names an RTF source. The
// published documents ship RTF content in .txt files.
func hasRTFExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rtf", ".txt":
		return true
	}
	return false
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > rtf2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, rtf2html.MaxPoolSize)
	}
	return nil
}
