package jsonval

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether the kind is a leaf value (bool, number or string).
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindNumber, KindString:
		return true
	}
}

// IsContainer reports whether the kind holds other values.
func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping:
		return true
	}
}
