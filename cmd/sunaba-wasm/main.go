//go:build js && wasm

// Package main is a js/wasm entry point exposing the placeholder
// two-argument-add WASM module to JavaScript. It is unrelated to
// compiling actual Sunaba programs — wiring this to the real
// tokeniser/parser output is explicitly out of scope, not a gap to fill.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o sunaba-stub.wasm ./cmd/sunaba-wasm
package main

import (
	"syscall/js"

	"github.com/sunabalang/sunaba/internal/wasmstub"
)

func main() {
	done := make(chan struct{})

	js.Global().Set("sunabaAddModuleBytes", js.FuncOf(func(this js.Value, args []js.Value) any {
		mod := wasmstub.AddModule()
		out := js.Global().Get("Uint8Array").New(len(mod))
		js.CopyBytesToJS(out, mod)
		return out
	}))

	js.Global().Get("console").Call("log", "sunaba-wasm stub module initialized")

	<-done
}
