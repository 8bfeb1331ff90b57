// Package codec converts between wire text and jsonval trees. It is a
// thin shell over existing parsers and printers; the mapping engine
// itself never tokenizes or prints text.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"object-mapper/jsonval"
)

var (
	ErrMalformed   = errors.New("malformed input text")
	ErrUnprintable = errors.New("tree cannot be printed")
)

// Parse parses JSON text into a Value tree. The top level may be any
// JSON value, not only an object.
func Parse(text string) (jsonval.Value, error) {
	if !gjson.Valid(text) {
		return jsonval.Value{}, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}

	return fromResult(gjson.Parse(text)), nil
}

func fromResult(r gjson.Result) jsonval.Value {
	switch r.Type {
	default:
		return jsonval.Value{}
	case gjson.Null:
		return jsonval.Null()
	case gjson.False:
		return jsonval.Bool(false)
	case gjson.True:
		return jsonval.Bool(true)
	case gjson.Number:
		return jsonval.Number(r.Num)
	case gjson.String:
		return jsonval.String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			items := r.Array()
			elems := make([]jsonval.Value, 0, len(items))
			for _, item := range items {
				elems = append(elems, fromResult(item))
			}
			return jsonval.Sequence(elems...)
		}

		m := jsonval.NewMapping()
		r.ForEach(func(key, val gjson.Result) bool {
			m.Set(key.Str, fromResult(val))
			return true
		})
		return m
	}
}

// Print serializes a Value tree to JSON text, optionally pretty-printed.
// Trees holding content JSON cannot represent (NaN or infinite numbers)
// yield ErrUnprintable.
func Print(v jsonval.Value, prettyPrint bool) (string, error) {
	if !v.IsValid() {
		return "", fmt.Errorf("%w: no value", ErrUnprintable)
	}

	data, err := json.Marshal(v.Interface())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnprintable, err)
	}

	if prettyPrint {
		data = pretty.Pretty(data)
	}

	return string(data), nil
}
