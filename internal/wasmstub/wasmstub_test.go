package wasmstub

import "testing"

func TestAddModuleHasWASMMagic(t *testing.T) {
	mod := AddModule()
	want := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if len(mod) < len(want) {
		t.Fatalf("module too short: %d bytes", len(mod))
	}
	for i, b := range want {
		if mod[i] != b {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x (magic+version header)", i, mod[i], b)
		}
	}
}

func TestAddModuleReturnsIndependentCopies(t *testing.T) {
	a := AddModule()
	b := AddModule()
	a[0] = 0xff
	if b[0] == 0xff {
		t.Fatal("AddModule callers must not share backing storage")
	}
}
