package mapper

import (
	"object-mapper/jsonval"
	"object-mapper/transform"
)

// Field binds a required scalar field to key. Decoding assigns only
// when the addressed value exists and has the matching kind, so a
// missing key or wrong kind leaves the field at its prior value.
// Encoding always writes the raw scalar form.
func Field[T Scalar](m *Mapper, key string, field *T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if raw, ok := scalarOf[T](cur); ok {
				*field = raw
			}
		}
	case DirectionEncode:
		m.write(scalarValue(*field))
	}
}

// OptField binds an optional scalar field to key. Decoding sets the
// field absent first, so a missing key or wrong kind yields nil.
// An absent field encodes as no key at all.
func OptField[T Scalar](m *Mapper, key string, field **T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if raw, ok := scalarOf[T](cur); ok {
				*field = &raw
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(scalarValue(**field))
		}
	}
}

// FieldWith binds a required field whose domain type needs a Transform
// to and from its raw scalar form (timestamps, URLs, stringified
// numbers). Either transform direction may produce no value, handled
// like a kind mismatch: prior value kept on decode, key omitted on
// encode.
func FieldWith[Raw Scalar, Domain any](m *Mapper, key string, field *Domain, tr transform.Transform[Raw, Domain]) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		cur, ok := m.current()
		if !ok {
			return
		}
		raw, ok := scalarOf[Raw](cur)
		if !ok {
			return
		}
		if val, ok := tr.Decode(raw); ok {
			*field = val
		}
	case DirectionEncode:
		if raw, ok := tr.Encode(*field); ok {
			m.write(scalarValue(raw))
		}
	}
}

// OptFieldWith is FieldWith for an optional field.
func OptFieldWith[Raw Scalar, Domain any](m *Mapper, key string, field **Domain, tr transform.Transform[Raw, Domain]) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		cur, ok := m.current()
		if !ok {
			return
		}
		raw, ok := scalarOf[Raw](cur)
		if !ok {
			return
		}
		if val, ok := tr.Decode(raw); ok {
			*field = &val
		}
	case DirectionEncode:
		if *field == nil {
			return
		}
		if raw, ok := tr.Encode(**field); ok {
			m.write(scalarValue(raw))
		}
	}
}

// Object binds a required nested Mappable field. Decoding requires the
// addressed value to be a mapping, default-constructs a fresh nested
// instance and runs its own declaration against that mapping through a
// fresh nested Mapper. Encoding runs the declaration the other way
// into a fresh mapping and writes it at the key.
func Object[T any, PT MappablePtr[T]](m *Mapper, key string, field *T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if nested, ok := decodeObject[T, PT](cur); ok {
				*field = nested
			}
		}
	case DirectionEncode:
		m.write(encodeObject[T, PT](field))
	}
}

// OptObject is Object for an optional nested field.
func OptObject[T any, PT MappablePtr[T]](m *Mapper, key string, field **T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if nested, ok := decodeObject[T, PT](cur); ok {
				*field = &nested
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(encodeObject[T, PT](*field))
		}
	}
}

// List binds a required sequence-of-scalar field. Elements that fail
// to decode are skipped individually; the field is replaced only when
// at least one element decoded, otherwise it keeps its prior value.
// Encoding writes every element, an empty slice included.
func List[T Scalar](m *Mapper, key string, field *[]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if elems, ok := decodeScalarList[T](cur); ok {
				*field = elems
			}
		}
	case DirectionEncode:
		m.write(encodeScalarList(*field))
	}
}

// OptList is List for an optional field: no decodable elements yields
// a nil slice, and a nil slice encodes as no key. A non-nil empty
// slice still encodes as an empty sequence.
func OptList[T Scalar](m *Mapper, key string, field *[]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if elems, ok := decodeScalarList[T](cur); ok {
				*field = elems
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(encodeScalarList(*field))
		}
	}
}

// ObjectList binds a required sequence-of-nested-object field, with
// the same element-granularity skip policy as List.
func ObjectList[T any, PT MappablePtr[T]](m *Mapper, key string, field *[]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if elems, ok := decodeObjectList[T, PT](cur); ok {
				*field = elems
			}
		}
	case DirectionEncode:
		m.write(encodeObjectList[T, PT](*field))
	}
}

// OptObjectList is ObjectList for an optional field.
func OptObjectList[T any, PT MappablePtr[T]](m *Mapper, key string, field *[]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if elems, ok := decodeObjectList[T, PT](cur); ok {
				*field = elems
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(encodeObjectList[T, PT](*field))
		}
	}
}

// Dict binds a required dictionary-of-scalar field keyed by string.
// Entries whose value fails to decode are skipped; the field is
// replaced only when at least one entry decoded.
func Dict[T Scalar](m *Mapper, key string, field *map[string]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if entries, ok := decodeScalarDict[T](cur); ok {
				*field = entries
			}
		}
	case DirectionEncode:
		m.write(encodeScalarDict(*field))
	}
}

// OptDict is Dict for an optional field.
func OptDict[T Scalar](m *Mapper, key string, field *map[string]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if entries, ok := decodeScalarDict[T](cur); ok {
				*field = entries
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(encodeScalarDict(*field))
		}
	}
}

// ObjectDict binds a required dictionary-of-nested-object field.
func ObjectDict[T any, PT MappablePtr[T]](m *Mapper, key string, field *map[string]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		if cur, ok := m.current(); ok {
			if entries, ok := decodeObjectDict[T, PT](cur); ok {
				*field = entries
			}
		}
	case DirectionEncode:
		m.write(encodeObjectDict[T, PT](*field))
	}
}

// OptObjectDict is ObjectDict for an optional field.
func OptObjectDict[T any, PT MappablePtr[T]](m *Mapper, key string, field *map[string]T) {
	m.Key(key)

	switch m.direction {
	case DirectionDecode:
		*field = nil
		if cur, ok := m.current(); ok {
			if entries, ok := decodeObjectDict[T, PT](cur); ok {
				*field = entries
			}
		}
	case DirectionEncode:
		if *field != nil {
			m.write(encodeObjectDict[T, PT](*field))
		}
	}
}

func decodeObject[T any, PT MappablePtr[T]](v jsonval.Value) (T, bool) {
	var zero T
	if v.Kind() != jsonval.KindMapping {
		return zero, false
	}

	inst := PT(new(T))
	inst.MapFields(newDecoder(v))

	return *inst, true
}

func encodeObject[T any, PT MappablePtr[T]](inst *T) jsonval.Value {
	child := newEncoder()
	PT(inst).MapFields(child)

	return child.tree
}

func decodeScalarList[T Scalar](v jsonval.Value) ([]T, bool) {
	if v.Kind() != jsonval.KindSequence {
		return nil, false
	}

	out := make([]T, 0, v.Len())
	for _, elem := range v.Items() {
		if raw, ok := scalarOf[T](elem); ok {
			out = append(out, raw)
		}
	}

	return out, len(out) > 0
}

func encodeScalarList[T Scalar](elems []T) jsonval.Value {
	seq := make([]jsonval.Value, 0, len(elems))
	for _, e := range elems {
		seq = append(seq, scalarValue(e))
	}

	return jsonval.Sequence(seq...)
}

func decodeObjectList[T any, PT MappablePtr[T]](v jsonval.Value) ([]T, bool) {
	if v.Kind() != jsonval.KindSequence {
		return nil, false
	}

	out := make([]T, 0, v.Len())
	for _, elem := range v.Items() {
		if nested, ok := decodeObject[T, PT](elem); ok {
			out = append(out, nested)
		}
	}

	return out, len(out) > 0
}

func encodeObjectList[T any, PT MappablePtr[T]](elems []T) jsonval.Value {
	seq := make([]jsonval.Value, 0, len(elems))
	for i := range elems {
		seq = append(seq, encodeObject[T, PT](&elems[i]))
	}

	return jsonval.Sequence(seq...)
}

func decodeScalarDict[T Scalar](v jsonval.Value) (map[string]T, bool) {
	if v.Kind() != jsonval.KindMapping {
		return nil, false
	}

	out := make(map[string]T, v.Len())
	for k, entry := range v.Entries() {
		if raw, ok := scalarOf[T](entry); ok {
			out[k] = raw
		}
	}

	return out, len(out) > 0
}

func encodeScalarDict[T Scalar](entries map[string]T) jsonval.Value {
	m := jsonval.NewMapping()
	for k, e := range entries {
		m.Set(k, scalarValue(e))
	}

	return m
}

func decodeObjectDict[T any, PT MappablePtr[T]](v jsonval.Value) (map[string]T, bool) {
	if v.Kind() != jsonval.KindMapping {
		return nil, false
	}

	out := make(map[string]T, v.Len())
	for k, entry := range v.Entries() {
		if nested, ok := decodeObject[T, PT](entry); ok {
			out[k] = nested
		}
	}

	return out, len(out) > 0
}

func encodeObjectDict[T any, PT MappablePtr[T]](entries map[string]T) jsonval.Value {
	m := jsonval.NewMapping()
	for k := range entries {
		e := entries[k]
		m.Set(k, encodeObject[T, PT](&e))
	}

	return m
}
