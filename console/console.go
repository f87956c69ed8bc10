//go:build js && wasm

package console

import (
	"strings"
	"syscall/js"
)

// Error writes args to console.error.
func Error(args ...any) {
	js.Global().Get("console").Call("error", args...)
}

// Write forwards one log line to console.log, dropping the trailing newline
// zerolog appends.
func (Writer) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
