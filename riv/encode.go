package riv

import "sort"

// Magic is the four-byte signature every .riv file begins with.
var Magic = [4]byte{'R', 'I', 'V', 'E'}

// MajorVersion and MinorVersion are the format version this package
// writes. When reading, Parse rejects a major version above
// MajorVersion and does not check the minor version (spec §4.D Header).
const (
	MajorVersion = 7
	MinorVersion = 0
)

// Compile decodes a scene-description document and encodes it straight
// to a .riv byte stream: the composition of Build and Encode, exposed
// together because almost every caller wants both (spec §4.A).
func Compile(data []byte, cfg Config) ([]byte, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	objects, err := Build(doc, cfg)
	if err != nil {
		return nil, err
	}
	return Encode(objects, cfg)
}

// Encode serializes an ordered object list to the binary .riv format:
// header, table of contents, then the object stream (spec §4.D).
func Encode(objects []Object, cfg Config) ([]byte, error) {
	w := NewWriter()

	w.WriteBytes(Magic[:])
	w.WriteVarUint(MajorVersion)
	w.WriteVarUint(MinorVersion)
	w.WriteVarUint(resolveFileID(cfg))

	toc := collectTOC(objects)
	w.WriteVarUint(uint64(len(toc)))
	for _, key := range toc {
		w.WriteVarUint(uint64(key))
	}
	writeBackingBitfield(w, toc)

	for _, obj := range objects {
		if err := encodeObject(w, &obj); err != nil {
			return nil, err
		}
	}
	w.WriteVarUint(0) // object-stream terminator: type key 0 never names a real class

	return w.Bytes(), nil
}

// collectTOC returns every non-baseline property key used by any
// object, sorted ascending — the ToC never lists the four baseline
// keys, since the runtime already knows their backing type natively.
func collectTOC(objects []Object) []PropertyKey {
	seen := map[PropertyKey]bool{}
	for _, obj := range objects {
		for _, p := range obj.Properties {
			if !IsBaseline(p.Key) {
				seen[p.Key] = true
			}
		}
	}
	keys := make([]PropertyKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// writeBackingBitfield packs each ToC key's 2-bit backing-type tag into
// 32-bit little-endian words, 16 keys per word, in ToC order. The final
// word is zero-padded in its unused high bits when len(toc) isn't a
// multiple of 16.
func writeBackingBitfield(w *Writer, toc []PropertyKey) {
	var word uint32
	var filled int
	flush := func() {
		w.WriteUint32(word)
		word, filled = 0, 0
	}
	for _, key := range toc {
		backing, _ := BackingTypeOf(key)
		word |= uint32(backing) << (2 * filled)
		filled++
		if filled == 16 {
			flush()
		}
	}
	if filled > 0 {
		flush()
	}
}

func propertyEmitOrder(cd *ClassDef, obj *Object) []PropertyKey {
	present := make(map[PropertyKey]bool, len(obj.Properties))
	for _, p := range obj.Properties {
		present[p.Key] = true
	}

	var ordered []PropertyKey
	if cd.Order != nil {
		for _, k := range cd.Order {
			if present[k] {
				ordered = append(ordered, k)
				delete(present, k)
			}
		}
	}

	rest := make([]PropertyKey, 0, len(present))
	for k := range present {
		rest = append(rest, k)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(ordered, rest...)
}

func encodeObject(w *Writer, obj *Object) error {
	w.WriteVarUint(uint64(obj.Type))
	cd := ClassByKind(obj.Class)

	for _, key := range propertyEmitOrder(cd, obj) {
		val, ok := obj.Get(key)
		if !ok {
			continue
		}
		w.WriteVarUint(uint64(key))
		if err := encodeValue(w, key, val); err != nil {
			return err
		}
	}
	w.WriteVarUint(0) // terminator
	return nil
}

func encodeValue(w *Writer, key PropertyKey, val PropertyValue) error {
	backing, ok := BackingTypeOf(key)
	if !ok {
		return unsupportedType("unregistered property key")
	}
	if IsRawByteBool(key) {
		w.WriteRawBool(val.Bool())
		return nil
	}
	switch backing {
	case BackingUintOrBool:
		w.WriteVarUint(val.Uint())
	case BackingString:
		w.WriteString(val.String())
	case BackingFloat:
		w.WriteFloat(val.Float())
	case BackingColor:
		w.WriteColor(val.ColorARGB())
	}
	return nil
}
