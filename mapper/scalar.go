package mapper

import "object-mapper/jsonval"

// Scalar is the closed set of leaf field types the plain binders move
// without a Transform. Integer fields decode from JSON numbers with
// truncation toward zero.
type Scalar interface {
	bool | string | int | int64 | float64
}

// scalarOf pulls a scalar of type T out of a tree value. A kind
// mismatch produces no value; numbers never coerce from strings or
// booleans and vice versa.
func scalarOf[T Scalar](v jsonval.Value) (T, bool) {
	var zero T

	switch any(zero).(type) {
	default:
		return zero, false

	case bool:
		b, ok := v.Bool()
		if !ok {
			return zero, false
		}
		return any(b).(T), true

	case string:
		s, ok := v.String()
		if !ok {
			return zero, false
		}
		return any(s).(T), true

	case float64:
		n, ok := v.Number()
		if !ok {
			return zero, false
		}
		return any(n).(T), true

	case int:
		n, ok := v.Number()
		if !ok {
			return zero, false
		}
		return any(int(n)).(T), true

	case int64:
		n, ok := v.Number()
		if !ok {
			return zero, false
		}
		return any(int64(n)).(T), true
	}
}

// scalarValue wraps a scalar field value into its tree form.
func scalarValue[T Scalar](field T) jsonval.Value {
	switch v := any(field).(type) {
	default:
		panic("mapper: scalarValue on a type outside the Scalar set")
	case bool:
		return jsonval.Bool(v)
	case string:
		return jsonval.String(v)
	case float64:
		return jsonval.Number(v)
	case int:
		return jsonval.Number(float64(v))
	case int64:
		return jsonval.Number(float64(v))
	}
}
