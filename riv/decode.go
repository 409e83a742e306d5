package riv

import "bytes"

// File is a fully parsed .riv byte stream: header fields plus the
// decoded object list, in the order they appeared on the wire.
type File struct {
	MajorVersion uint64
	MinorVersion uint64
	FileID       uint64
	Objects      []Object
}

// Parse decodes a .riv byte stream into a File (spec §4.D). It performs
// no semantic validation beyond what decoding itself requires — parent
// index bounds and property backing-type agreement — leaving deeper
// checks (parent cycles, per-class required properties) to Validate.
func Parse(data []byte) (*File, error) {
	r := NewReader(data)

	magic, err := r.ReadBytes(4)
	if err != nil {
		return nil, validationErr(ErrTruncatedInput, r.Offset(), "header")
	}
	if !bytes.Equal(magic, Magic[:]) {
		return nil, validationErr(ErrBadMagic, 0, "expected RIVE magic")
	}

	major, err := r.ReadVarUint()
	if err != nil {
		return nil, validationErr(ErrTruncatedInput, r.Offset(), "major version")
	}
	minor, err := r.ReadVarUint()
	if err != nil {
		return nil, validationErr(ErrTruncatedInput, r.Offset(), "minor version")
	}
	if major > MajorVersion {
		return nil, validationErr(ErrBadMagic, r.Offset(), "unsupported major version")
	}
	fileID, err := r.ReadVarUint()
	if err != nil {
		return nil, validationErr(ErrTruncatedInput, r.Offset(), "file_id")
	}

	_, backingOf, err := parseTOC(r)
	if err != nil {
		return nil, err
	}

	objects, err := parseObjectStream(r, backingOf)
	if err != nil {
		return nil, err
	}

	if r.Remaining() > 0 {
		return nil, validationErr(ErrExcessInputAfterObjects, r.Offset(), "")
	}

	return &File{MajorVersion: major, MinorVersion: minor, FileID: fileID, Objects: objects}, nil
}

func parseTOC(r *Reader) ([]PropertyKey, map[PropertyKey]BackingType, error) {
	count, err := r.ReadVarUint32()
	if err != nil {
		return nil, nil, validationErr(ErrTruncatedInput, r.Offset(), "toc key count")
	}

	keys := make([]PropertyKey, count)
	for i := range keys {
		k, err := r.ReadVarUint()
		if err != nil {
			return nil, nil, validationErr(ErrTruncatedInput, r.Offset(), "toc key")
		}
		key := PropertyKey(k)
		if IsBaseline(key) {
			return nil, nil, validationErr(ErrUnknownPropertyKey, r.Offset(), "baseline key in toc")
		}
		keys[i] = key
	}

	backingOf := make(map[PropertyKey]BackingType, count)
	var word uint32
	var bitsLeft int
	for _, key := range keys {
		if bitsLeft == 0 {
			w, err := r.ReadUint32()
			if err != nil {
				return nil, nil, validationErr(ErrTruncatedInput, r.Offset(), "toc bitfield")
			}
			word = w
			bitsLeft = 16
		}
		backing := BackingType(word & 0x3)
		word >>= 2
		bitsLeft--
		backingOf[key] = backing

		if reg, ok := BackingTypeOf(key); ok && reg != backing {
			return nil, nil, validationErr(ErrBackingTypeMismatch, r.Offset(), PropertyName(key))
		}
	}
	return keys, backingOf, nil
}

func parseObjectStream(r *Reader, backingOf map[PropertyKey]BackingType) ([]Object, error) {
	var objects []Object
	for {
		startOffset := r.Offset()
		typeVal, err := r.ReadVarUint()
		if err != nil {
			return nil, validationErr(ErrTruncatedInput, startOffset, "object type key")
		}
		if typeVal == 0 {
			break // object-stream terminator
		}

		typeKey := TypeKey(typeVal)
		kind, ok := ClassOfType(typeKey)
		if !ok {
			return nil, validationErr(ErrUnknownPropertyKey, startOffset, "unknown type key")
		}
		obj := Object{Type: typeKey, Class: kind}

		for {
			keyOffset := r.Offset()
			keyVal, err := r.ReadVarUint()
			if err != nil {
				return nil, validationErr(ErrTruncatedInput, keyOffset, "property key")
			}
			if keyVal == 0 {
				break // object terminator
			}
			key := PropertyKey(keyVal)

			backing, ok := backingOf[key]
			if !ok {
				if IsBaseline(key) {
					backing, _ = BackingTypeOf(key)
				} else {
					return nil, validationErr(ErrUnknownPropertyKey, keyOffset, PropertyName(key))
				}
			}

			val, err := decodeValue(r, key, backing)
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, Property{Key: key, Value: val})
			if key == PropName {
				obj.Name = val.String()
			}
		}

		if parentIdx, ok := obj.ParentID(); ok {
			if parentIdx < 0 || parentIdx >= len(objects) {
				return nil, validationErr(ErrImpossibleParentIndex, startOffset, "")
			}
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func decodeValue(r *Reader, key PropertyKey, backing BackingType) (PropertyValue, error) {
	offset := r.Offset()
	if IsRawByteBool(key) {
		v, err := r.ReadRawBool()
		if err != nil {
			return PropertyValue{}, wrapDecodeErr(err, offset)
		}
		return Bool(v), nil
	}
	switch backing {
	case BackingUintOrBool:
		v, err := r.ReadVarUint()
		if err != nil {
			return PropertyValue{}, wrapDecodeErr(err, offset)
		}
		return Uint(v), nil
	case BackingString:
		s, err := r.ReadString()
		if err != nil {
			return PropertyValue{}, wrapDecodeErr(err, offset)
		}
		return Str(s), nil
	case BackingFloat:
		f, err := r.ReadFloat()
		if err != nil {
			return PropertyValue{}, wrapDecodeErr(err, offset)
		}
		return Float(f), nil
	case BackingColor:
		c, err := r.ReadColor()
		if err != nil {
			return PropertyValue{}, wrapDecodeErr(err, offset)
		}
		return Color(c), nil
	default:
		return PropertyValue{}, validationErr(ErrUnknownPropertyKey, offset, "unrecognized backing type")
	}
}

func wrapDecodeErr(err error, offset int) error {
	switch err {
	case ErrInvalidUTF8:
		return validationErr(ErrInvalidUTF8InStream, offset, "")
	case ErrInvalidRawBool:
		return validationErr(ErrBackingTypeMismatch, offset, "raw bool byte must be 0x00 or 0x01")
	default:
		return validationErr(ErrTruncatedInput, offset, err.Error())
	}
}
