package assets

// defaultLoader serves the package-level lookups.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS style by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// TopNoteTemplate returns the top-note markup using the default
// embedded loader.
func TopNoteTemplate() (string, error) {
	return defaultLoader.TopNoteTemplate()
}
