//go:build js && wasm

package events

import "syscall/js"

// ExposeStringFunc registers handler as a global JavaScript function named
// name. The first argument is converted to a string ("" when missing).
// The handler runs on the JavaScript event loop and must not block; start a
// goroutine for anything that waits on I/O.
func ExposeStringFunc(name string, handler func(arg string)) (release func()) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		arg := ""
		if len(args) > 0 && args[0].Truthy() {
			arg = args[0].String()
		}
		handler(arg)
		return nil
	})
	js.Global().Set(name, fn)

	return func() {
		js.Global().Delete(name)
		fn.Release()
	}
}
