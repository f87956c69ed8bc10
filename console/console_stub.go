//go:build !(js && wasm)

package console

import "os"

// Stub file for non-WASM builds so packages that log to the browser console
// compile and run natively. The real implementation is in console.go.

// Error is a no-op in non-WASM builds.
func Error(args ...any) {}

// Write sends p to standard error in non-WASM builds.
func (Writer) Write(p []byte) (int, error) {
	return os.Stderr.Write(p)
}
