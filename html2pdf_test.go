package cv2pdf

import (
	"strings"
	"testing"
)

// ---- TestBuildFooterTemplate - Chrome footer HTML generation ----

func TestBuildFooterTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     *footerData
		contains []string
		excludes []string
	}{
		{
			name:     "nil data gives empty span",
			data:     nil,
			contains: []string{"<span></span>"},
		},
		{
			name:     "empty footer gives empty span",
			data:     &footerData{},
			contains: []string{"<span></span>"},
		},
		{
			name: "name and page number",
			data: &footerData{Name: "A B", ShowName: true, ShowPageNumber: true},
			contains: []string{
				"A B — ",
				`<span class="pageNumber"></span> of <span class="totalPages"></span>`,
			},
		},
		{
			name:     "page number only",
			data:     &footerData{Name: "A B", ShowPageNumber: true},
			contains: []string{`class="pageNumber"`},
			excludes: []string{"A B"},
		},
		{
			name:     "free text",
			data:     &footerData{Text: "Confidential"},
			contains: []string{"Confidential"},
		},
		{
			name:     "name is escaped",
			data:     &footerData{Name: "<b>A</b>", ShowName: true},
			contains: []string{"&lt;b&gt;A&lt;/b&gt;"},
			excludes: []string{"<b>A</b>"},
		},
		{
			name:     "default position is center",
			data:     &footerData{ShowPageNumber: true},
			contains: []string{"text-align: center"},
		},
		{
			name:     "left position",
			data:     &footerData{Position: "left", ShowPageNumber: true},
			contains: []string{"text-align: left"},
		},
		{
			name:     "right position",
			data:     &footerData{Position: "right", ShowPageNumber: true},
			contains: []string{"text-align: right"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildFooterTemplate(tt.data)

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("buildFooterTemplate() missing %q in:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("buildFooterTemplate() should not contain %q:\n%s", bad, got)
				}
			}
		})
	}
}

// ---- TestBuildPDFOptions - page geometry resolution ----

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{
			name:       "nil options use letter portrait defaults",
			opts:       nil,
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 0.5,
		},
		{
			name:       "a4 portrait",
			opts:       &pdfOptions{Page: &PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.75}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 0.75,
		},
		{
			name:       "letter landscape swaps dimensions",
			opts:       &pdfOptions{Page: &PageSettings{Size: "letter", Orientation: "landscape", Margin: 0.5}},
			wantWidth:  11,
			wantHeight: 8.5,
			wantMargin: 0.5,
		},
		{
			name:       "legal size",
			opts:       &pdfOptions{Page: &PageSettings{Size: "legal", Orientation: "portrait", Margin: 0.5}},
			wantWidth:  8.5,
			wantHeight: 14,
			wantMargin: 0.5,
		},
		{
			name:       "case-insensitive size",
			opts:       &pdfOptions{Page: &PageSettings{Size: "A4", Orientation: "Portrait", Margin: 0.5}},
			wantWidth:  8.27,
			wantHeight: 11.69,
			wantMargin: 0.5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)

			if *got.PaperWidth != tt.wantWidth {
				t.Errorf("PaperWidth = %v, want %v", *got.PaperWidth, tt.wantWidth)
			}
			if *got.PaperHeight != tt.wantHeight {
				t.Errorf("PaperHeight = %v, want %v", *got.PaperHeight, tt.wantHeight)
			}
			if *got.MarginTop != tt.wantMargin {
				t.Errorf("MarginTop = %v, want %v", *got.MarginTop, tt.wantMargin)
			}
			if !got.PrintBackground {
				t.Error("PrintBackground = false, want true")
			}
		})
	}
}

func TestBuildPDFOptionsFooterMargin(t *testing.T) {
	t.Parallel()

	opts := &pdfOptions{
		Page:   &PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.5},
		Footer: &footerData{ShowPageNumber: true},
	}

	got := buildPDFOptions(opts)

	if *got.MarginBottom != 0.5+footerMarginBonus {
		t.Errorf("MarginBottom = %v, want %v", *got.MarginBottom, 0.5+footerMarginBonus)
	}
	if !got.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter = false, want true")
	}
	if got.HeaderTemplate != "<span></span>" {
		t.Errorf("HeaderTemplate = %q, want empty span", got.HeaderTemplate)
	}
	if !strings.Contains(got.FooterTemplate, "pageNumber") {
		t.Error("FooterTemplate missing page number span")
	}
}
