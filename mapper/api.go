package mapper

import (
	"object-mapper/codec"
	"object-mapper/jsonval"
)

// Decode parses JSON text and decodes it into a fresh instance of T.
// The only failure is malformed text; everything the tree is missing
// or holds in the wrong shape leaves the corresponding fields at their
// default-constructed values.
func Decode[T any, PT MappablePtr[T]](text string) (PT, error) {
	tree, err := codec.Parse(text)
	if err != nil {
		return nil, err
	}

	return DecodeValue[T, PT](tree), nil
}

// DecodeInto parses JSON text and decodes it into an existing
// instance. Fields whose keys are absent from the text keep their
// pre-call values, which is what distinguishes this merge path from
// Decode.
func DecodeInto(text string, into Mappable) error {
	tree, err := codec.Parse(text)
	if err != nil {
		return err
	}

	DecodeValueInto(tree, into)
	return nil
}

// DecodeValue decodes an already-parsed tree into a fresh instance.
func DecodeValue[T any, PT MappablePtr[T]](tree jsonval.Value) PT {
	inst := PT(new(T))
	DecodeValueInto(tree, inst)

	return inst
}

// DecodeValueInto decodes an already-parsed tree into an existing
// instance, running its declaration once in decode direction.
func DecodeValueInto(tree jsonval.Value, into Mappable) {
	into.MapFields(newDecoder(tree))
}

// DecodeArray parses JSON text holding a sequence of objects and
// decodes each element. A single unwrapped object is tolerated and
// treated as a one-element input.
func DecodeArray[T any, PT MappablePtr[T]](text string) ([]PT, error) {
	tree, err := codec.Parse(text)
	if err != nil {
		return nil, err
	}

	return DecodeValueArray[T, PT](tree), nil
}

// DecodeValueArray is DecodeArray for an already-parsed tree. Sequence
// elements that are not mappings are skipped.
func DecodeValueArray[T any, PT MappablePtr[T]](tree jsonval.Value) []PT {
	switch tree.Kind() {
	default:
		return nil

	case jsonval.KindMapping:
		return []PT{DecodeValue[T, PT](tree)}

	case jsonval.KindSequence:
		out := make([]PT, 0, tree.Len())
		for _, elem := range tree.Items() {
			if elem.Kind() == jsonval.KindMapping {
				out = append(out, DecodeValue[T, PT](elem))
			}
		}
		return out
	}
}

// Encode runs the instance's declaration in encode direction against a
// fresh empty mapping and returns the built tree. Building a tree
// cannot fail; only its later serialization can.
func Encode(inst Mappable) jsonval.Value {
	enc := newEncoder()
	inst.MapFields(enc)

	return enc.tree
}

// EncodeText encodes the instance and serializes the tree to JSON
// text. Serialization failure yields an error instead of text.
func EncodeText(inst Mappable, pretty bool) (string, error) {
	return codec.Print(Encode(inst), pretty)
}

// EncodeArray encodes each instance and returns the sequence of built
// trees.
func EncodeArray[T any, PT MappablePtr[T]](insts []T) jsonval.Value {
	seq := make([]jsonval.Value, 0, len(insts))
	for i := range insts {
		seq = append(seq, Encode(PT(&insts[i])))
	}

	return jsonval.Sequence(seq...)
}
