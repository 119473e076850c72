package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects style names that could escape the embedded
// styles directory. Only bare names are accepted: "classic" passes;
// "../x", "a/b", and "classic.css" do not.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
