//go:build debug

package debug

// Debug is true when the module is built with the debug tag.
const Debug = true
