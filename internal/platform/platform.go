// Package platform holds cosmetic OS-dependent display choices.
package platform

import "runtime"

// ModKey returns the display label for the primary modifier key, used in
// help text and the palette hint.
func ModKey() string {
	return modKeyFor(runtime.GOOS)
}

func modKeyFor(goos string) string {
	if goos == "darwin" {
		return "⌘"
	}
	return "Ctrl"
}
