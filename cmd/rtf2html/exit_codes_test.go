package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	rtf2html "github.com/lotuslion/go-rtf2html"
	"github.com/lotuslion/go-rtf2html/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"file not found", os.ErrNotExist, ExitIO},
		{"read failure", fmt.Errorf("%w: no such file", ErrReadRTF), ExitIO},
		{"write failure", fmt.Errorf("%w: permission denied", ErrWriteHTML), ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty input", rtf2html.ErrEmptyInput, ExitUsage},
		{"unknown style", rtf2html.ErrStyleNotFound, ExitUsage},
		{"bad extension", ErrInvalidExtension, ExitUsage},
		{"bad workers", ErrInvalidWorkerCount, ExitUsage},
		{"title with batch", ErrTitleWithBatch, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
