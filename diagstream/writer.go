package diagstream

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer writes diagnostic frames to an io.Writer, one per call to
// WriteFrame, each carrying a CRC-32 over its payload.
type Writer struct {
	w   io.Writer
	seq uint64
}

// NewWriter returns a Writer over w. Sequence numbers start at 1.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// WriteSchema, WriteBuild, and WriteValidate emit one frame of the
// corresponding kind, auto-assigning the next sequence number.
func (w *Writer) WriteSchema(payload []byte) error   { return w.write(KindSchema, payload) }
func (w *Writer) WriteBuild(payload []byte) error    { return w.write(KindBuild, payload) }
func (w *Writer) WriteValidate(payload []byte) error { return w.write(KindValidate, payload) }

func (w *Writer) write(kind Kind, payload []byte) error {
	w.seq++
	crc := ComputeCRC(payload)
	return w.WriteFrame(&Frame{Seq: w.seq, Kind: kind, Payload: payload, CRC: &crc})
}

// WriteFrame writes f verbatim: "@diag{v=1 seq=N kind=K len=N
// crc=XXXXXXXX}\n<payload>\n". If f.CRC is nil it is computed from
// f.Payload before writing.
func (w *Writer) WriteFrame(f *Frame) error {
	var header strings.Builder
	header.WriteString("@diag{v=")
	header.WriteString(strconv.Itoa(int(Version)))
	header.WriteString(" seq=")
	header.WriteString(strconv.FormatUint(f.Seq, 10))
	header.WriteString(" kind=")
	header.WriteString(f.Kind.String())
	header.WriteString(" len=")
	header.WriteString(strconv.Itoa(len(f.Payload)))

	crc := f.CRC
	if crc == nil {
		computed := ComputeCRC(f.Payload)
		crc = &computed
	}
	header.WriteString(" crc=")
	header.WriteString(fmt.Sprintf("%08x", *crc))
	header.WriteString("}\n")

	if _, err := io.WriteString(w.w, header.String()); err != nil {
		return err
	}
	if _, err := w.w.Write(f.Payload); err != nil {
		return err
	}
	_, err := io.WriteString(w.w, "\n")
	return err
}
