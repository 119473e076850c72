package assets

import (
	"embed"
	"fmt"
)

//go:embed styles templates
var assetsFS embed.FS

// EmbeddedLoader serves the styles and templates compiled into the
// binary. It is the production loader; tests can substitute canned
// assets through the AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the CSS for one of the shipped styles ("classic",
// "modern"). The name is validated first so user input never reaches
// an embedded path directly.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := assetsFS.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// TopNoteTemplate returns the markup for the note injected at the top
// of the document.
func (e *EmbeddedLoader) TopNoteTemplate() (string, error) {
	content, err := assetsFS.ReadFile("templates/topnote.html")
	if err != nil {
		return "", fmt.Errorf("%w: topnote", ErrTemplateNotFound)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
