// Package jsonval provides the untyped tree representation of parsed
// JSON data: null, boolean, number, string, sequence and mapping nodes.
//
// A Value is a tagged union over those six kinds. Trees produced by
// decoding are treated as immutable snapshots; trees built for encoding
// grow through Set and the sequence constructor. Mapping payloads are
// Go maps, so copies of a mapping Value alias the same entries and
// writes through any copy are visible through all of them.
package jsonval

import "math"

type Value struct {
	kind KindEnum
	b    bool
	num  float64
	str  string
	seq  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Sequence returns an ordered sequence of the given elements.
// Invalid (zero) elements are dropped.
func Sequence(elems ...Value) Value {
	seq := make([]Value, 0, len(elems))
	for _, e := range elems {
		if e.IsValid() {
			seq = append(seq, e)
		}
	}

	return Value{kind: KindSequence, seq: seq}
}

// NewMapping returns a fresh empty mapping.
func NewMapping() Value {
	return Value{kind: KindMapping, obj: make(map[string]Value)}
}

func (v Value) Kind() KindEnum { return v.kind }

// IsValid reports whether the value holds any JSON kind at all.
// The zero Value is invalid and represents "no value".
func (v Value) IsValid() bool { return v.kind != 0 }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) String() (string, bool) {
	return v.str, v.kind == KindString
}

// Items returns the elements of a sequence, or nil for any other kind.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.seq
}

// Len returns the element count of a sequence or entry count of a
// mapping, and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	default:
		return 0
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.obj)
	}
}

// Get returns the value stored under key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}

	val, ok := v.obj[key]
	return val, ok
}

// Set stores val under key. It panics when v is not a mapping, the
// same way writing to a typed nil map would.
func (v Value) Set(key string, val Value) {
	if v.kind != KindMapping {
		panic("jsonval: Set on a non-mapping value of kind " + v.kind.String())
	}

	v.obj[key] = val
}

// Keys returns the keys of a mapping in unspecified order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}

	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}

	return keys
}

// Entries returns the underlying mapping storage, or nil for any other
// kind. Mutating the returned map mutates the value.
func (v Value) Entries() map[string]Value {
	if v.kind != KindMapping {
		return nil
	}
	return v.obj
}

// Equal reports deep equality of two values. NaN numbers compare equal
// to keep Equal reflexive.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	default:
		return true // both invalid or both null
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.str == other.str
	case KindNumber:
		if math.IsNaN(v.num) && math.IsNaN(other.num) {
			return true
		}
		return v.num == other.num
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, val := range v.obj {
			otherVal, ok := other.obj[k]
			if !ok || !val.Equal(otherVal) {
				return false
			}
		}
		return true
	}
}
