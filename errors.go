package rtf2html

import (
	"errors"

	"github.com/lotuslion/go-rtf2html/internal/assets"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput = errors.New("rtf content cannot be empty")

	// ErrRecoveryQuality signals that recovery produced fewer paragraphs
	// than the configured floor. The ConvertResult is still returned;
	// callers decide whether to keep the output.
	ErrRecoveryQuality = errors.New("recovered document below quality threshold")

	ErrRenderFailed = errors.New("page rendering failed")
)

// Asset loading errors, re-exported for callers matching with errors.Is.
var (
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)
