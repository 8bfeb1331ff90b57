package mapper

import (
	"strings"

	"object-mapper/jsonval"
)

// lookupPath resolves a dotted key against a mapping root. Every
// intermediate component must itself resolve to a mapping; an explicit
// null or a non-mapping intermediate stops resolution and yields
// absent, the same as a missing key. The final component's value is
// returned whatever its kind, explicit null included.
func lookupPath(root jsonval.Value, dotted string) (jsonval.Value, bool) {
	cur, rest := root, dotted

	for {
		head, tail, more := strings.Cut(rest, ".")

		child, ok := cur.Get(head)
		if !ok {
			return jsonval.Value{}, false
		}

		if !more {
			return child, true
		}

		if child.Kind() != jsonval.KindMapping {
			return jsonval.Value{}, false
		}

		cur, rest = child, tail
	}
}

// storePath sets the final component of a dotted key to v, creating
// intermediate mapping nodes as needed. Sibling keys already present
// at each level are untouched; an intermediate that exists but is not
// a mapping is replaced by one.
func storePath(root jsonval.Value, dotted string, v jsonval.Value) {
	cur, rest := root, dotted

	for {
		head, tail, more := strings.Cut(rest, ".")

		if !more {
			cur.Set(head, v)
			return
		}

		child, ok := cur.Get(head)
		if !ok || child.Kind() != jsonval.KindMapping {
			child = jsonval.NewMapping()
			cur.Set(head, child)
		}

		cur, rest = child, tail
	}
}
