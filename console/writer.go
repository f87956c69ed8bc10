// Package console binds the browser console for Go code compiled to WebAssembly.
// Native builds get no-op stubs so the same packages compile for tests.
package console

import "io"

// Writer is an io.Writer that emits each write as one console.log line.
// It is the output used by the structured logger in the browser.
type Writer struct{}

var _ io.Writer = Writer{}
