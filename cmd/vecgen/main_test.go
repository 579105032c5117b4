package main

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	src, err := generate()
	if err != nil {
		t.Fatalf("generate() failed: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"package simdpp",
		"type Uint8x16 struct{ r reg128 }",
		"type Float64x4 struct{ r reg256 }",
		"func MakeUint32x4(vals ...uint32) Uint32x4",
		"func (a Float32x4) AsUint32x4() Uint32x4",
		"func (a Int8x32) AsUint8x32() Uint8x32",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q", want)
		}
	}

	if !strings.HasPrefix(out, "// Code generated by vecgen. DO NOT EDIT.") {
		t.Errorf("generated source missing the generated-code marker")
	}
}

func TestTypeTableConsistency(t *testing.T) {
	for _, vt := range vecTypes {
		wantBits := vt.N * laneBits(t, vt.Elem)
		if wantBits != vt.Bits {
			t.Errorf("%s: %d lanes of %s fill %d bits, table says %d",
				vt.Name, vt.N, vt.Elem, wantBits, vt.Bits)
		}
		if vt.Signed && vt.UElem == "" {
			t.Errorf("%s: signed type without unsigned backing element", vt.Name)
		}
	}
}

func laneBits(t *testing.T, elem string) int {
	t.Helper()
	switch elem {
	case "uint8", "int8":
		return 8
	case "uint16", "int16":
		return 16
	case "uint32", "int32", "float32":
		return 32
	case "uint64", "int64", "float64":
		return 64
	}
	t.Fatalf("unknown element type %q", elem)
	return 0
}
