package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "browser connect",
			err:  cv2pdf.ErrBrowserConnect,
			want: ExitBrowser,
		},
		{
			name: "pdf generation wrapped",
			err:  fmt.Errorf("converting to PDF: %w", cv2pdf.ErrPDFGeneration),
			want: ExitBrowser,
		},
		{
			name: "file not found",
			err:  fmt.Errorf("%w: %v", ErrReadCV, os.ErrNotExist),
			want: ExitIO,
		},
		{
			name: "no input",
			err:  ErrNoInput,
			want: ExitIO,
		},
		{
			name: "write pdf",
			err:  fmt.Errorf("%w: disk full", ErrWritePDF),
			want: ExitIO,
		},
		{
			name: "write rendition",
			err:  ErrWriteRendition,
			want: ExitIO,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "config parse",
			err:  config.ErrConfigParse,
			want: ExitUsage,
		},
		{
			name: "cv parse",
			err:  cv2pdf.ErrCVParse,
			want: ExitUsage,
		},
		{
			name: "missing name",
			err:  cv2pdf.ErrMissingName,
			want: ExitUsage,
		},
		{
			name: "date order wrapped",
			err:  fmt.Errorf("experience[0] %q: %w", "Dev", cv2pdf.ErrDateOrder),
			want: ExitUsage,
		},
		{
			name: "invalid page size",
			err:  cv2pdf.ErrInvalidPageSize,
			want: ExitUsage,
		},
		{
			name: "invalid extension",
			err:  fmt.Errorf("%w: got %q", ErrInvalidExtension, ".txt"),
			want: ExitUsage,
		},
		{
			name: "invalid timeout",
			err:  ErrInvalidTimeout,
			want: ExitUsage,
		},
		{
			name: "unknown error",
			err:  errors.New("something else"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
