// Package platform normalizes host-specific paths into the form expected by
// the demo player plugin.
package platform

import "strings"

// UnixSeparators returns path with every backslash replaced by a forward
// slash. It is applied regardless of the host OS because the player plugin
// only understands forward slashes, and filepath.ToSlash is a no-op on Unix.
func UnixSeparators(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
