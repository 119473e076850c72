package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

const testCVYAML = `contact:
  name: A B
  email: ab@example.com
summary: Backend engineer.
experience:
  - title: Dev
    organization: X
    start: "2020"
    highlights:
      - Did thing
skills:
  - category: Languages
    skills: [Go, SQL]
education:
  - institution: State University
    degree: BS
    area: Computer Science
    start: "2012"
    end: "2016"
`

// fakeRenderer records inputs and returns canned renditions.
type fakeRenderer struct {
	lastInput cv2pdf.Input
	result    *cv2pdf.Result
	err       error
	closed    bool
}

func (f *fakeRenderer) Render(_ context.Context, input cv2pdf.Input) (*cv2pdf.Result, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func fakeFactory(f *fakeRenderer) rendererFactory {
	return func(time.Duration) (Renderer, error) {
		return f, nil
	}
}

func testEnv() (*Environment, *strings.Builder, *strings.Builder) {
	stdout := &strings.Builder{}
	stderr := &strings.Builder{}
	env := &Environment{
		Now:    time.Now,
		Stdout: stdout,
		Stderr: stderr,
		Config: config.DefaultConfig(),
	}
	return env, stdout, stderr
}

func writeTestCV(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "cv.yaml")
	if err := os.WriteFile(path, []byte(testCVYAML), 0o644); err != nil {
		t.Fatalf("writing test CV: %v", err)
	}
	return path
}

func TestRunRender(t *testing.T) {
	inputPath := writeTestCV(t)
	fake := &fakeRenderer{result: &cv2pdf.Result{
		Markdown: []byte("# A B\n"),
		HTML:     []byte("<html></html>"),
		PDF:      []byte("%PDF-fake"),
	}}
	env, stdout, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{inputPath})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	if err := runRender(context.Background(), args, flags, env, fakeFactory(fake)); err != nil {
		t.Fatalf("runRender() unexpected error: %v", err)
	}

	pdfPath := strings.TrimSuffix(inputPath, ".yaml") + ".pdf"
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("reading output PDF: %v", err)
	}
	if string(data) != "%PDF-fake" {
		t.Errorf("PDF content = %q", data)
	}

	if fake.lastInput.CV == nil || fake.lastInput.CV.Contact.Name != "A B" {
		t.Error("parsed CV did not reach the renderer")
	}
	if !fake.closed {
		t.Error("renderer was not closed")
	}
	if !strings.Contains(stdout.String(), "Created ") {
		t.Errorf("stdout = %q, want Created message", stdout.String())
	}
}

func TestRunRenderNoInput(t *testing.T) {
	fake := &fakeRenderer{}
	env, _, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	err = runRender(context.Background(), args, flags, env, fakeFactory(fake))
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("runRender() error = %v, want %v", err, ErrNoInput)
	}
}

func TestRunRenderBadExtension(t *testing.T) {
	fake := &fakeRenderer{}
	env, _, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{"cv.txt"})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	err = runRender(context.Background(), args, flags, env, fakeFactory(fake))
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("runRender() error = %v, want %v", err, ErrInvalidExtension)
	}
}

func TestRunRenderMissingFile(t *testing.T) {
	fake := &fakeRenderer{}
	env, _, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{filepath.Join(t.TempDir(), "nope.yaml")})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	err = runRender(context.Background(), args, flags, env, fakeFactory(fake))
	if !errors.Is(err, ErrReadCV) {
		t.Errorf("runRender() error = %v, want %v", err, ErrReadCV)
	}
}

func TestRunRenderMalformedCV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.yaml")
	if err := os.WriteFile(path, []byte("contact: [not a mapping"), 0o644); err != nil {
		t.Fatalf("writing test CV: %v", err)
	}

	fake := &fakeRenderer{}
	env, _, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{path})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	err = runRender(context.Background(), args, flags, env, fakeFactory(fake))
	if !errors.Is(err, cv2pdf.ErrCVParse) {
		t.Errorf("runRender() error = %v, want %v", err, cv2pdf.ErrCVParse)
	}
}

func TestRunRenderFlagsReachInput(t *testing.T) {
	inputPath := writeTestCV(t)
	fake := &fakeRenderer{result: &cv2pdf.Result{PDF: []byte("x")}}
	env, _, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{
		"--accent-color", "#336699",
		"--footer-name",
		"--last-updated",
		"--present-label", "now",
		"-q",
		inputPath,
	})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	if err := runRender(context.Background(), args, flags, env, fakeFactory(fake)); err != nil {
		t.Fatalf("runRender() unexpected error: %v", err)
	}

	in := fake.lastInput
	if in.Theme == nil || in.Theme.AccentColor != "#336699" {
		t.Error("accent color did not reach the render input")
	}
	if in.Footer == nil || !in.Footer.ShowName {
		t.Error("footer flag did not reach the render input")
	}
	if in.TopNote == nil {
		t.Error("top note flag did not reach the render input")
	}
	if in.PresentLabel != "now" {
		t.Errorf("PresentLabel = %q, want now", in.PresentLabel)
	}
}

func TestRunRenderQuiet(t *testing.T) {
	inputPath := writeTestCV(t)
	fake := &fakeRenderer{result: &cv2pdf.Result{PDF: []byte("x")}}
	env, stdout, _ := testEnv()

	flags, args, err := parseRenderFlags([]string{"-q", inputPath})
	if err != nil {
		t.Fatalf("parseRenderFlags() unexpected error: %v", err)
	}

	if err := runRender(context.Background(), args, flags, env, fakeFactory(fake)); err != nil {
		t.Fatalf("runRender() unexpected error: %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("quiet mode wrote to stdout: %q", stdout.String())
	}
}

func TestWriteOutputs(t *testing.T) {
	t.Parallel()

	result := &cv2pdf.Result{
		Markdown: []byte("# A B\n"),
		HTML:     []byte("<html></html>"),
		PDF:      []byte("%PDF-fake"),
	}

	tests := []struct {
		name     string
		mode     outputFlags
		wantExts []string
	}{
		{
			name:     "pdf only",
			mode:     outputFlags{},
			wantExts: []string{".pdf"},
		},
		{
			name:     "markdown alongside",
			mode:     outputFlags{markdown: true},
			wantExts: []string{".md", ".pdf"},
		},
		{
			name:     "html alongside",
			mode:     outputFlags{html: true},
			wantExts: []string{".html", ".pdf"},
		},
		{
			name:     "markdown only",
			mode:     outputFlags{markdownOnly: true},
			wantExts: []string{".md"},
		},
		{
			name:     "html only",
			mode:     outputFlags{htmlOnly: true},
			wantExts: []string{".md", ".html"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pdfPath := filepath.Join(t.TempDir(), "cv.pdf")
			written, err := writeOutputs(pdfPath, result, tt.mode)
			if err != nil {
				t.Fatalf("writeOutputs() unexpected error: %v", err)
			}

			if len(written) != len(tt.wantExts) {
				t.Fatalf("written = %v, want %d files", written, len(tt.wantExts))
			}
			for i, ext := range tt.wantExts {
				if filepath.Ext(written[i]) != ext {
					t.Errorf("written[%d] = %q, want extension %q", i, written[i], ext)
				}
				if _, err := os.Stat(written[i]); err != nil {
					t.Errorf("written file missing: %v", err)
				}
			}
		})
	}
}

func TestWriteOutputsCreatesDirectory(t *testing.T) {
	t.Parallel()

	pdfPath := filepath.Join(t.TempDir(), "nested", "deep", "cv.pdf")
	result := &cv2pdf.Result{PDF: []byte("x")}

	if _, err := writeOutputs(pdfPath, result, outputFlags{}); err != nil {
		t.Fatalf("writeOutputs() unexpected error: %v", err)
	}
	if _, err := os.Stat(pdfPath); err != nil {
		t.Errorf("output not created: %v", err)
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		inputPath  string
		flagOutput string
		defaultDir string
		want       string
	}{
		{
			name:      "alongside input",
			inputPath: filepath.Join("docs", "cv.yaml"),
			want:      filepath.Join("docs", "cv.pdf"),
		},
		{
			name:       "explicit pdf path",
			inputPath:  "cv.yaml",
			flagOutput: filepath.Join("out", "resume.pdf"),
			want:       filepath.Join("out", "resume.pdf"),
		},
		{
			name:       "output directory",
			inputPath:  filepath.Join("docs", "cv.yaml"),
			flagOutput: "out",
			want:       filepath.Join("out", "cv.pdf"),
		},
		{
			name:       "config default dir",
			inputPath:  "cv.yml",
			defaultDir: "exports",
			want:       filepath.Join("exports", "cv.pdf"),
		},
		{
			name:       "flag wins over config dir",
			inputPath:  "cv.yaml",
			flagOutput: "out",
			defaultDir: "exports",
			want:       filepath.Join("out", "cv.pdf"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Output.DefaultDir = tt.defaultDir

			got := resolveOutputPath(tt.inputPath, tt.flagOutput, cfg)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		flagTimeout string
		envTimeout  time.Duration
		want        time.Duration
		wantErr     error
	}{
		{
			name: "default",
			want: 30 * time.Second,
		},
		{
			name:        "flag value",
			flagTimeout: "2m",
			want:        2 * time.Minute,
		},
		{
			name:       "env value",
			envTimeout: 45 * time.Second,
			want:       45 * time.Second,
		},
		{
			name:        "flag wins over env",
			flagTimeout: "10s",
			envTimeout:  45 * time.Second,
			want:        10 * time.Second,
		},
		{
			name:        "invalid flag",
			flagTimeout: "fast",
			wantErr:     ErrInvalidTimeout,
		},
		{
			name:        "negative flag",
			flagTimeout: "-5s",
			wantErr:     ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flagTimeout, tt.envTimeout)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("resolveTimeout() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeout() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateCVExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"cv.yaml", false},
		{"cv.yml", false},
		{"cv.txt", true},
		{"cv.json", true},
		{"cv", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			err := validateCVExtension(tt.path)
			if tt.wantErr && !errors.Is(err, ErrInvalidExtension) {
				t.Errorf("validateCVExtension(%q) = %v, want %v", tt.path, err, ErrInvalidExtension)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateCVExtension(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("cli overrides config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Theme.Style = "classic"
		cfg.Page.Size = "letter"

		flags := &renderFlags{}
		flags.theme.style = "modern"
		flags.page.size = "a4"

		mergeFlags(flags, cfg)

		if cfg.Theme.Style != "modern" {
			t.Errorf("Theme.Style = %q", cfg.Theme.Style)
		}
		if cfg.Page.Size != "a4" {
			t.Errorf("Page.Size = %q", cfg.Page.Size)
		}
	})

	t.Run("footer flags enable footer", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Footer.Enabled = false

		flags := &renderFlags{}
		flags.footer.showName = true

		mergeFlags(flags, cfg)

		if !cfg.Footer.Enabled || !cfg.Footer.ShowName {
			t.Error("footer flag did not enable the footer")
		}
	})

	t.Run("disable flags win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Footer.Enabled = true
		cfg.TopNote.Enabled = true

		flags := &renderFlags{}
		flags.footer.disabled = true
		flags.topNote.disabled = true

		mergeFlags(flags, cfg)

		if cfg.Footer.Enabled {
			t.Error("no-footer did not disable the footer")
		}
		if cfg.TopNote.Enabled {
			t.Error("no-top-note did not disable the top note")
		}
	})

	t.Run("top note text enables note", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.TopNote.Enabled = false

		flags := &renderFlags{}
		flags.topNote.text = "Updated for 2026"

		mergeFlags(flags, cfg)

		if !cfg.TopNote.Enabled || cfg.TopNote.Text != "Updated for 2026" {
			t.Error("top note text did not enable the note")
		}
	})
}

func TestBuildTheme(t *testing.T) {
	t.Parallel()

	t.Run("nil when unset", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Theme = config.ThemeConfig{}

		if got := buildTheme(cfg); got != nil {
			t.Errorf("buildTheme() = %+v, want nil", got)
		}
	})

	t.Run("populated", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Theme.Style = "modern"
		cfg.Theme.AccentColor = "#336699"

		got := buildTheme(cfg)
		if got == nil {
			t.Fatal("buildTheme() = nil")
		}
		if got.Style != "modern" || got.AccentColor != "#336699" {
			t.Errorf("buildTheme() = %+v", got)
		}
	})
}

func TestBuildPageSettings(t *testing.T) {
	t.Parallel()

	t.Run("nil when unset", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Page = config.PageConfig{}

		if got := buildPageSettings(cfg); got != nil {
			t.Errorf("buildPageSettings() = %+v, want nil", got)
		}
	})

	t.Run("defaults fill unset fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Page = config.PageConfig{Size: "a4"}

		got := buildPageSettings(cfg)
		if got == nil {
			t.Fatal("buildPageSettings() = nil")
		}
		if got.Size != "a4" {
			t.Errorf("Size = %q", got.Size)
		}
		if got.Orientation != cv2pdf.OrientationPortrait {
			t.Errorf("Orientation = %q", got.Orientation)
		}
		if got.Margin != cv2pdf.DefaultMargin {
			t.Errorf("Margin = %v", got.Margin)
		}
	})
}
