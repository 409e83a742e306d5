package diagstream

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteSchema([]byte(`{"a":1}`)); err != nil {
		t.Fatalf("WriteSchema: %v", err)
	}
	if err := w.WriteBuild([]byte(`{"b":2}`)); err != nil {
		t.Fatalf("WriteBuild: %v", err)
	}
	if err := w.WriteValidate([]byte("")); err != nil {
		t.Fatalf("WriteValidate: %v", err)
	}

	r := NewReader(&buf)
	kinds := []Kind{KindSchema, KindBuild, KindValidate}
	for i, want := range kinds {
		f, err := r.Next()
		if err != nil {
			t.Fatalf("frame %d: Next: %v", i, err)
		}
		if f.Kind != want {
			t.Fatalf("frame %d: kind = %v, want %v", i, f.Kind, want)
		}
		if f.Seq != uint64(i+1) {
			t.Fatalf("frame %d: seq = %d, want %d", i, f.Seq, i+1)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after last frame, got %v", err)
	}
}

func TestReaderDetectsCRCMismatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBuild([]byte("payload")); err != nil {
		t.Fatalf("WriteBuild: %v", err)
	}

	corrupted := bytes.Replace(buf.Bytes(), []byte("payload"), []byte("PAYLOAD"), 1)
	r := NewReader(bytes.NewReader(corrupted))
	if _, err := r.Next(); err != ErrCRCMismatch {
		t.Fatalf("expected ErrCRCMismatch, got %v", err)
	}
}

func TestWithoutCRCVerificationSkipsCheck(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBuild([]byte("payload")); err != nil {
		t.Fatalf("WriteBuild: %v", err)
	}
	corrupted := bytes.Replace(buf.Bytes(), []byte("payload"), []byte("PAYLOAD"), 1)
	r := NewReader(bytes.NewReader(corrupted), WithoutCRCVerification())
	if _, err := r.Next(); err != nil {
		t.Fatalf("unexpected error with verification disabled: %v", err)
	}
}

func TestComputeCRCDeterministic(t *testing.T) {
	a := ComputeCRC([]byte("hello"))
	b := ComputeCRC([]byte("hello"))
	if a != b {
		t.Fatal("ComputeCRC not deterministic")
	}
	if !VerifyCRC([]byte("hello"), a) {
		t.Fatal("VerifyCRC rejected its own checksum")
	}
	if VerifyCRC([]byte("world"), a) {
		t.Fatal("VerifyCRC accepted mismatched payload")
	}
}
