// Package assets embeds the visual assets shipped with cv2pdf: the
// built-in CSS styles and the top-note markup.
//
// Styles live under styles/ and are addressed by bare name without the
// .css extension ("classic", "modern"). Names are validated before
// lookup to prevent path traversal. The top-note template is a fixed
// asset with its own accessor.
package assets
