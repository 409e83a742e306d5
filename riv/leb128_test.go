package riv

import (
	"bytes"
	"math"
	"testing"
)

func TestVarUintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 0x7F, 0x80, 0x3FFF, 0x4000, math.MaxUint32, math.MaxUint64}
	for _, v := range cases {
		w := NewWriter()
		w.WriteVarUint(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadVarUint()
		if err != nil {
			t.Fatalf("ReadVarUint(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("roundtrip %d got %d", v, got)
		}
		if !r.Done() {
			t.Fatalf("roundtrip %d left %d bytes unread", v, r.Remaining())
		}
	}
}

func TestVarUint32Overflow(t *testing.T) {
	w := NewWriter()
	w.WriteVarUint(math.MaxUint64)
	r := NewReader(w.Bytes())
	if _, err := r.ReadVarUint32(); err == nil {
		t.Fatal("expected overflow error reading 64-bit value as 32-bit")
	}
}

func TestVarUintTruncated(t *testing.T) {
	r := NewReader([]byte{0x80, 0x80})
	if _, err := r.ReadVarUint(); err != ErrUnexpectedEOF {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestRawBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		w := NewWriter()
		w.WriteRawBool(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadRawBool()
		if err != nil || got != v {
			t.Fatalf("RawBool(%v): got %v, err %v", v, got, err)
		}
	}
}

func TestRawBoolInvalidByte(t *testing.T) {
	r := NewReader([]byte{0x02})
	if _, err := r.ReadRawBool(); err != ErrInvalidRawBool {
		t.Fatalf("expected ErrInvalidRawBool, got %v", err)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float32{0, -1.5, 3.14159, math.MaxFloat32} {
		w := NewWriter()
		w.WriteFloat(f)
		r := NewReader(w.Bytes())
		got, err := r.ReadFloat()
		if err != nil || got != f {
			t.Fatalf("Float(%v): got %v, err %v", f, got, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "unicode: é中"} {
		w := NewWriter()
		w.WriteString(s)
		r := NewReader(w.Bytes())
		got, err := r.ReadString()
		if err != nil || got != s {
			t.Fatalf("String(%q): got %q, err %v", s, got, err)
		}
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	w := NewWriter()
	w.WriteVarUint(2)
	w.WriteBytes([]byte{0xff, 0xfe})
	r := NewReader(w.Bytes())
	if _, err := r.ReadString(); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestColorRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteColor(0xAABBCCDD)
	r := NewReader(w.Bytes())
	got, err := r.ReadColor()
	if err != nil || got != 0xAABBCCDD {
		t.Fatalf("Color: got %08X, err %v", got, err)
	}
}

func TestUint32LittleEndian(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0x01020304)
	if !bytes.Equal(w.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("unexpected bytes %x", w.Bytes())
	}
}
