// Package mapper is the bidirectional data-binding engine. A domain
// type declares once, in MapFields, how its fields correspond to tree
// keys; the same declaration drives decoding a tree into the type and
// encoding the type back into a tree.
//
// A Mapper carries the state of one in-flight conversion: the current
// direction, the tree being read or built, and the currently selected
// key. Field declarations never branch on direction themselves; the
// generic bind functions (Field, Object, List, Dict and friends)
// branch once, centrally, on the Mapper's direction.
//
// A Mapper is mutable scratch state owned by a single top-level call.
// Distinct conversions may run in parallel; one Mapper must never be
// shared between them. Nested conversions get a fresh Mapper each.
package mapper

import "object-mapper/jsonval"

// Mappable is the capability a domain type implements to participate
// in the engine. MapFields is invoked exactly once per conversion and
// must list the type's fields against keys through the bind functions,
// with no direction-dependent branching.
type Mappable interface {
	MapFields(m *Mapper)
}

// MappablePtr constrains a pointer-to-T that implements Mappable, so
// the engine can default-construct instances with new(T).
type MappablePtr[T any] interface {
	*T
	Mappable
}

type Mapper struct {
	direction DirectionEnum
	tree      jsonval.Value
	key       string
	cur       jsonval.Value
	curOK     bool
}

func newDecoder(tree jsonval.Value) *Mapper {
	return &Mapper{direction: DirectionDecode, tree: tree}
}

func newEncoder() *Mapper {
	return &Mapper{direction: DirectionEncode, tree: jsonval.NewMapping()}
}

func (m *Mapper) Direction() DirectionEnum { return m.direction }

// Tree returns the tree this Mapper reads from or writes into.
func (m *Mapper) Tree() jsonval.Value { return m.tree }

// Key selects the field addressed by key, which may be dotted to reach
// into nested mappings ("height.value"). While decoding it resolves
// and caches the addressed value; while encoding it only records the
// key for the next write. Selecting has no other side effects and
// reselecting the same key is idempotent.
func (m *Mapper) Key(key string) *Mapper {
	m.key = key
	m.cur, m.curOK = jsonval.Value{}, false

	if m.direction == DirectionDecode {
		m.cur, m.curOK = lookupPath(m.tree, key)
	}

	return m
}

// current returns the value resolved for the selected key, valid only
// while decoding.
func (m *Mapper) current() (jsonval.Value, bool) {
	return m.cur, m.curOK
}

// write stores v at the selected key path, creating intermediate
// mappings for dotted keys. An invalid v omits the key entirely: a
// vacuous field leaves no null placeholder behind.
func (m *Mapper) write(v jsonval.Value) {
	if !v.IsValid() {
		return
	}

	storePath(m.tree, m.key, v)
}
