// Package cv2pdf renders structured CV data to a styled PDF using
// headless Chrome.
//
// # Quick Start
//
// Parse a YAML CV, create a renderer, render, and close when done:
//
//	cv, err := cv2pdf.ParseCV(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r, err := cv2pdf.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	result, err := r.Render(ctx, cv2pdf.Input{CV: cv})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("cv.pdf", result.PDF, 0644)
//
// The result also carries the intermediate markdown (result.Markdown)
// and HTML (result.HTML) renditions. Use Input.MarkdownOnly or
// Input.HTMLOnly to stop the pipeline early.
//
// # Rendering Pipeline
//
// Rendering follows these stages:
//
//  1. Section assembly: the CV becomes ordered markdown sections
//     (header, summary, experience, skills, education)
//  2. Markdown to HTML conversion via Goldmark
//  3. HTML injection (style CSS, theme overrides, top note)
//  4. PDF rendering via headless Chrome (go-rod)
//
// The assembly stage is pure: the same CV always produces the same
// sections, and entry order is preserved from the input.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := cv2pdf.NewRenderer(
//	    cv2pdf.WithTimeout(2 * time.Minute),
//	)
//
// Per-render options are passed via Input:
//
//	result, err := r.Render(ctx, cv2pdf.Input{
//	    CV:      cv,
//	    Theme:   &cv2pdf.Theme{Style: "modern", AccentColor: "#0969da"},
//	    Page:    &cv2pdf.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.5},
//	    Footer:  &cv2pdf.Footer{ShowName: true, ShowPageNumber: true},
//	    TopNote: &cv2pdf.TopNote{},
//	})
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/). Use ROD_BROWSER_BIN to specify a custom
// Chrome binary in containers and CI environments.
package cv2pdf
