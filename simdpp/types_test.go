package simdpp

import (
	"math"
	"reflect"
	"testing"
)

func TestMakeAndLanes(t *testing.T) {
	a := MakeUint16x8(1, 2, 3)
	want := []uint16{1, 2, 3, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(a.Lanes(), want) {
		t.Errorf("MakeUint16x8(1,2,3).Lanes() = %v, want %v", a.Lanes(), want)
	}

	b := SplatInt8x16(-5)
	for i := 0; i < 16; i++ {
		if b.GetElem(i) != -5 {
			t.Errorf("SplatInt8x16 lane %d = %d, want -5", i, b.GetElem(i))
		}
	}
}

func TestMakeTooManyLanes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MakeUint64x2 with 3 values did not panic")
		}
	}()
	MakeUint64x2(1, 2, 3)
}

// Casts are views over the same register image, never conversions.
func TestCastBitFidelity(t *testing.T) {
	f := MakeFloat32x4(1.5, -0.0, float32(math.Inf(1)), math.Float32frombits(0x7fc00001))
	u := f.AsUint32x4()
	for i := 0; i < 4; i++ {
		if u.GetElem(i) != math.Float32bits(f.GetElem(i)) {
			t.Errorf("lane %d: %#x != Float32bits(%v)", i, u.GetElem(i), f.GetElem(i))
		}
	}
	if u.AsFloat32x4() != f {
		t.Errorf("round trip through Uint32x4 changed the register")
	}

	s := MakeInt32x4(-1, math.MinInt32, math.MaxInt32, 0)
	if got := s.AsUint32x4().Lanes(); !reflect.DeepEqual(got, []uint32{0xffffffff, 0x80000000, 0x7fffffff, 0}) {
		t.Errorf("signed view bits = %#x", got)
	}
}

// Cross-width views follow little-endian lane order.
func TestCastCrossWidth(t *testing.T) {
	a := MakeUint8x16(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10)

	w := a.AsUint16x8()
	if w.GetElem(0) != 0x0201 || w.GetElem(7) != 0x100f {
		t.Errorf("u16 view = %#x", w.Lanes())
	}

	d := a.AsUint32x4()
	if d.GetElem(0) != 0x04030201 {
		t.Errorf("u32 view lane 0 = %#x", d.GetElem(0))
	}

	q := a.AsUint64x2()
	if q.GetElem(1) != 0x100f0e0d0c0b0a09 {
		t.Errorf("u64 view lane 1 = %#x", q.GetElem(1))
	}

	if q.AsUint8x16() != a {
		t.Errorf("round trip through Uint64x2 changed the register")
	}
}

func TestLaneTables(t *testing.T) {
	for i, l := range Lanes16 {
		if l.Index() != i {
			t.Errorf("Lanes16[%d].Index() = %d", i, l.Index())
		}
	}
	for i, l := range Lanes8 {
		if l.Index() != i {
			t.Errorf("Lanes8[%d].Index() = %d", i, l.Index())
		}
	}
	for i, l := range Lanes4 {
		if l.Index() != i {
			t.Errorf("Lanes4[%d].Index() = %d", i, l.Index())
		}
	}
	for i, l := range Lanes2 {
		if l.Index() != i {
			t.Errorf("Lanes2[%d].Index() = %d", i, l.Index())
		}
	}
}
