package riv

import "testing"

func makeObjects(n int) []Object {
	objs := []Object{{Type: TypeKeyOf(ClassBackboard), Class: ClassBackboard}}
	ab := Object{Type: TypeKeyOf(ClassArtboard), Class: ClassArtboard}
	ab.Set(PropWidth, Float(100))
	ab.Set(PropHeight, Float(100))
	ab.Set(PropName, Str("root"))
	objs = append(objs, ab)
	for i := 0; i < n; i++ {
		node := Object{Type: TypeKeyOf(ClassNode), Class: ClassNode}
		node.Set(PropParentID, Uint(1))
		node.Set(PropX, Float(float32(i)))
		objs = append(objs, node)
	}
	return objs
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 16, 17, 32} {
		objs := makeObjects(n)
		fid := uint64(42)
		data, err := Encode(objs, Config{FileID: &fid})
		if err != nil {
			t.Fatalf("n=%d Encode: %v", n, err)
		}
		file, err := Parse(data)
		if err != nil {
			t.Fatalf("n=%d Parse: %v", n, err)
		}
		if file.FileID != fid {
			t.Fatalf("n=%d file id mismatch: got %d", n, file.FileID)
		}
		if len(file.Objects) != len(objs) {
			t.Fatalf("n=%d object count mismatch: got %d want %d", n, len(file.Objects), len(objs))
		}
		for i, obj := range file.Objects {
			if obj.Type != objs[i].Type {
				t.Fatalf("n=%d object %d type mismatch", n, i)
			}
		}
	}
}

func TestEncodeHeaderFields(t *testing.T) {
	data, err := Encode(makeObjects(0), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:4]) != "RIVE" {
		t.Fatalf("bad magic: %q", data[:4])
	}
	if data[4] != MajorVersion || data[5] != MinorVersion {
		t.Fatalf("bad version bytes: %02x %02x", data[4], data[5])
	}
}

func TestParseRejectsBadMagic(t *testing.T) {
	data, _ := Encode(makeObjects(0), DefaultConfig())
	corrupt := append([]byte{}, data...)
	corrupt[0] = 'X'
	if _, err := Parse(corrupt); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestParseRejectsExcessInput(t *testing.T) {
	data, _ := Encode(makeObjects(0), DefaultConfig())
	corrupt := append(data, 0xFF)
	if _, err := Parse(corrupt); err == nil {
		t.Fatal("expected error for excess input after terminator")
	}
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	data, _ := Encode(makeObjects(2), DefaultConfig())
	if _, err := Parse(data[:len(data)-3]); err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestParseRejectsImpossibleParentIndex(t *testing.T) {
	objs := makeObjects(0)
	bad := Object{Type: TypeKeyOf(ClassNode), Class: ClassNode}
	bad.Set(PropParentID, Uint(99))
	objs = append(objs, bad)
	data, err := Encode(objs, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for out-of-range parent_id")
	}
}

func TestTOCExcludesBaselineKeys(t *testing.T) {
	objs := makeObjects(1)
	toc := collectTOC(objs)
	for _, k := range toc {
		if IsBaseline(k) {
			t.Fatalf("baseline key %d leaked into ToC", k)
		}
	}
}

func TestRawByteBoolRoundTripsAllDesignatedKeys(t *testing.T) {
	for key := range rawByteBoolKeys {
		w := NewWriter()
		if err := encodeValue(w, key, Bool(true)); err != nil {
			t.Fatalf("key %d: encodeValue: %v", key, err)
		}
		if w.Len() != 1 {
			t.Fatalf("key %d: encoded %d bytes, want 1", key, w.Len())
		}
		r := NewReader(w.Bytes())
		v, err := decodeValue(r, key, BackingUintOrBool)
		if err != nil || !v.Bool() {
			t.Fatalf("key %d: raw bool round trip failed: %v %v", key, v, err)
		}
	}
}
