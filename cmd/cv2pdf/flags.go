package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// themeFlags holds visual styling flags.
type themeFlags struct {
	style       string
	fontFamily  string
	fontSize    string
	textColor   string
	accentColor string
	lineHeight  string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	showName   bool
	pageNumber bool
	disabled   bool
}

// topNoteFlags holds "Last updated in ..." note flags.
type topNoteFlags struct {
	text     string
	enabled  bool
	disabled bool
}

// outputFlags holds output mode flags.
type outputFlags struct {
	markdown     bool // write the markdown rendition alongside the PDF
	markdownOnly bool // stop after assembly, write markdown only
	html         bool // write the HTML rendition alongside the PDF
	htmlOnly     bool // write markdown and HTML, skip PDF
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common       commonFlags
	output       string
	timeout      string
	presentLabel string
	theme        themeFlags
	page         pageFlags
	footer       footerFlags
	topNote      topNoteFlags
	outputMode   outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addThemeFlags adds theme flags to a FlagSet.
func addThemeFlags(fs *flag.FlagSet, f *themeFlags) {
	fs.StringVarP(&f.style, "style", "s", "", "style name, CSS file path, or raw CSS")
	fs.StringVar(&f.fontFamily, "font-family", "", "CSS font stack")
	fs.StringVar(&f.fontSize, "font-size", "", "base font size (e.g. 11pt)")
	fs.StringVar(&f.textColor, "text-color", "", "text color (hex)")
	fs.StringVar(&f.accentColor, "accent-color", "", "accent color for name and headings (hex)")
	fs.StringVar(&f.lineHeight, "line-height", "", "line height (e.g. 1.4)")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.showName, "footer-name", false, "show the CV name in the footer")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addTopNoteFlags adds top note flags to a FlagSet.
func addTopNoteFlags(fs *flag.FlagSet, f *topNoteFlags) {
	fs.StringVar(&f.text, "top-note", "", "custom top note text")
	fs.BoolVar(&f.enabled, "last-updated", false, "show a \"Last updated in ...\" top note")
	fs.BoolVar(&f.disabled, "no-top-note", false, "disable top note")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.markdown, "markdown", false, "write the markdown rendition alongside the PDF")
	fs.BoolVar(&f.markdownOnly, "markdown-only", false, "write markdown only, skip HTML and PDF")
	fs.BoolVar(&f.html, "html", false, "write the HTML rendition alongside the PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write markdown and HTML, skip PDF")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output PDF file or directory")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.presentLabel, "present-label", "", "text for ongoing date ranges (default: present)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addThemeFlags(fs, &f.theme)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addTopNoteFlags(fs, &f.topNote)
	addOutputFlags(fs, &f.outputMode)

	fs.Usage = func() { printRenderUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
