//go:build !(js && wasm)

package events

// Stub file for non-WASM builds so the entry point compiles natively.
// The actual implementation is in events.go with js/wasm build tags.

// ExposeStringFunc does nothing in non-WASM builds.
func ExposeStringFunc(name string, handler func(arg string)) (release func()) {
	return func() {}
}
