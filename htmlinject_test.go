package cv2pdf

import (
	"context"
	"strings"
	"testing"
)

// ---- TestInjectCSS - style block placement ----

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "inserts before closing head",
			html: "<html><head><title>x</title></head><body></body></html>",
			css:  "body { color: red; }",
			want: "<style>body { color: red; }</style></head>",
		},
		{
			name: "inserts after body when no head",
			html: "<html><body class=\"a\"><p>hi</p></body></html>",
			css:  "p { margin: 0; }",
			want: "<body class=\"a\"><style>p { margin: 0; }</style>",
		},
		{
			name: "prepends when no head or body",
			html: "<p>bare</p>",
			css:  "p { margin: 0; }",
			want: "<style>p { margin: 0; }</style><p>bare</p>",
		},
		{
			name: "empty css returns unchanged",
			html: "<html><head></head><body></body></html>",
			css:  "",
			want: "<html><head></head><body></body></html>",
		},
	}

	injector := &cssInjection{}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if !strings.Contains(got, tt.want) {
				t.Errorf("InjectCSS() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestInjectCSSSanitizes(t *testing.T) {
	t.Parallel()

	injector := &cssInjection{}
	html := "<html><head></head><body></body></html>"
	css := "body { } </style><script>alert(1)</script>"

	got := injector.InjectCSS(context.Background(), html, css)

	if strings.Contains(got, "</style><script>") {
		t.Error("CSS injection was not sanitized")
	}
}

// ---- TestInjectTopNote - note rendering and placement ----

func TestInjectTopNote(t *testing.T) {
	t.Parallel()

	injector := newTopNoteInjection()
	html := "<html><head></head><body><h1>A B</h1></body></html>"

	got, err := injector.InjectTopNote(context.Background(), html, &topNoteData{Text: "Last updated in Sept 2026"})
	if err != nil {
		t.Fatalf("InjectTopNote() unexpected error: %v", err)
	}

	if !strings.Contains(got, "Last updated in Sept 2026") {
		t.Error("note text missing")
	}
	if !strings.Contains(got, `class="cv-top-note"`) {
		t.Error("note wrapper class missing")
	}

	// Note must come before the document content
	noteIdx := strings.Index(got, "cv-top-note")
	h1Idx := strings.Index(got, "<h1>")
	if noteIdx > h1Idx {
		t.Error("top note injected after document content")
	}
}

func TestInjectTopNoteNilData(t *testing.T) {
	t.Parallel()

	injector := newTopNoteInjection()
	html := "<html><body></body></html>"

	got, err := injector.InjectTopNote(context.Background(), html, nil)
	if err != nil {
		t.Fatalf("InjectTopNote() unexpected error: %v", err)
	}
	if got != html {
		t.Errorf("InjectTopNote(nil) = %q, want unchanged", got)
	}
}

func TestInjectTopNoteEscapesHTML(t *testing.T) {
	t.Parallel()

	injector := newTopNoteInjection()
	html := "<html><body></body></html>"

	got, err := injector.InjectTopNote(context.Background(), html, &topNoteData{Text: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("InjectTopNote() unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Error("note text was not HTML-escaped")
	}
}

func TestInjectTopNoteCancelledContext(t *testing.T) {
	t.Parallel()

	injector := newTopNoteInjection()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := injector.InjectTopNote(ctx, "<html></html>", &topNoteData{Text: "x"})
	if err == nil {
		t.Error("expected context error, got nil")
	}
}
