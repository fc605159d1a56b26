// Package wasmstub holds a placeholder WebAssembly emitter, unrelated to
// the tokeniser or parser: a fixed, two-argument-add module, independent
// of any parsed Program. It exists so cmd/sunaba-wasm has something real
// to export, not to generate code from Sunaba source.
package wasmstub

// addModule is a hand-assembled, minimal WebAssembly binary module
// exporting a single function "add(a, b) -> a + b". Bytes, section by
// section:
//
//	magic + version
//	type section:     one func type (i32, i32) -> i32
//	function section: function 0 uses type 0
//	export section:   export function 0 as "add"
//	code section:      local.get 0; local.get 1; i32.add; end
var addModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // \0asm
	0x01, 0x00, 0x00, 0x00, // version 1

	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // type section
	0x03, 0x02, 0x01, 0x00, // function section
	0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00, // export section: "add"
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b, // code section
}

// AddModule returns a fresh copy of the fixed two-argument-add WASM
// module. It never touches a parsed Program; it is a standing
// placeholder until real code generation exists.
func AddModule() []byte {
	out := make([]byte, len(addModule))
	copy(out, addModule)
	return out
}
