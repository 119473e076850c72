package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a YAML CV to PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cv2pdf help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf render <cv.yaml> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a YAML CV to a styled PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  cv.yaml    CV source file (.yaml or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>       PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file path, or raw CSS")
	fmt.Fprintln(w, "      --font-family <s>     CSS font stack")
	fmt.Fprintln(w, "      --font-size <s>       Base font size (e.g. 11pt)")
	fmt.Fprintln(w, "      --text-color <s>      Text color (hex)")
	fmt.Fprintln(w, "      --accent-color <s>    Accent color for name and headings (hex)")
	fmt.Fprintln(w, "      --line-height <s>     Line height (e.g. 1.4)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s> Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-name         Show the CV name in the footer")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Note:")
	fmt.Fprintln(w, "      --last-updated        Show a \"Last updated in ...\" top note")
	fmt.Fprintln(w, "      --top-note <s>        Custom top note text")
	fmt.Fprintln(w, "      --no-top-note         Disable top note")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dates:")
	fmt.Fprintln(w, "      --present-label <s>   Text for ongoing ranges (default: present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Modes:")
	fmt.Fprintln(w, "      --markdown            Write the markdown rendition alongside the PDF")
	fmt.Fprintln(w, "      --markdown-only       Write markdown only, skip HTML and PDF")
	fmt.Fprintln(w, "      --html                Write the HTML rendition alongside the PDF")
	fmt.Fprintln(w, "      --html-only           Write markdown and HTML, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
