package mapper

//go:generate go tool stringer -type=DirectionEnum -output=direction_string.go

type DirectionEnum int

const (
	_ DirectionEnum = iota // skip zero value, use it as a default (invalid) value for DirectionEnum

	DirectionDecode
	DirectionEncode

	// DirectionTotal is a constant that represents the total number of directions defined
	DirectionTotal = int(iota)
)
