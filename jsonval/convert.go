package jsonval

// FromGo converts plain Go data of the shapes produced by encoding/json
// and yaml.v3 (nil, bool, numerics, string, []any, map[string]any) into
// a Value tree. Unsupported shapes yield no value.
func FromGo(data any) (Value, bool) {
	switch d := data.(type) {
	default:
		return Value{}, false

	case nil:
		return Null(), true
	case bool:
		return Bool(d), true
	case string:
		return String(d), true

	case float64:
		return Number(d), true
	case float32:
		return Number(float64(d)), true
	case int:
		return Number(float64(d)), true
	case int8:
		return Number(float64(d)), true
	case int16:
		return Number(float64(d)), true
	case int32:
		return Number(float64(d)), true
	case int64:
		return Number(float64(d)), true
	case uint:
		return Number(float64(d)), true
	case uint8:
		return Number(float64(d)), true
	case uint16:
		return Number(float64(d)), true
	case uint32:
		return Number(float64(d)), true
	case uint64:
		return Number(float64(d)), true

	case []any:
		elems := make([]Value, 0, len(d))
		for _, e := range d {
			v, ok := FromGo(e)
			if !ok {
				return Value{}, false
			}
			elems = append(elems, v)
		}
		return Sequence(elems...), true

	case map[string]any:
		m := NewMapping()
		for k, e := range d {
			v, ok := FromGo(e)
			if !ok {
				return Value{}, false
			}
			m.Set(k, v)
		}
		return m, true
	}
}

// Interface converts the value back into plain Go data: nil, bool,
// float64, string, []any or map[string]any. The invalid value converts
// to nil as well.
func (v Value) Interface() any {
	switch v.kind {
	default:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			out[k] = e.Interface()
		}
		return out
	}
}
