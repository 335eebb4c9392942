package assets

import (
	"fmt"
	"unicode"
)

// ValidateAssetName accepts names made of letters, digits, '-' and '_'.
// Everything else, separators and dots included, is rejected so a name can
// never leave its asset directory or pick its own extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		if !isNameRune(r) {
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	return r == '-' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
