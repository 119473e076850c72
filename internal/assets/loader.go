package assets

// AssetLoader resolves the visual assets a render needs: a named CSS
// style and the top-note markup.
type AssetLoader interface {
	// LoadStyle returns the CSS for a built-in style name such as
	// "classic". Returns ErrStyleNotFound for unknown names and
	// ErrInvalidAssetName for names that fail validation.
	LoadStyle(name string) (string, error)

	// TopNoteTemplate returns the html/template source for the
	// top-of-document note. Returns ErrTemplateNotFound if the
	// template is missing from the build.
	TopNoteTemplate() (string, error)
}
