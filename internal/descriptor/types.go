package descriptor

import "fmt"

// TypeTag is the value type of a parameter.
type TypeTag string

const (
	TypeBool   TypeTag = "bool"
	TypeInt    TypeTag = "int"
	TypeFloat  TypeTag = "float"
	TypeVector TypeTag = "vector"
	TypeMatrix TypeTag = "matrix"
)

// maxComponents is the largest default value vector each type accepts.
var maxComponents = map[TypeTag]int{
	TypeBool:   1,
	TypeInt:    1,
	TypeFloat:  1,
	TypeVector: 4,
	TypeMatrix: 16,
}

// ParseTypeTag converts a manifest keyword into a TypeTag.
func ParseTypeTag(s string) (TypeTag, error) {
	t := TypeTag(s)
	if _, ok := maxComponents[t]; !ok {
		return "", fmt.Errorf("unsupported parameter type %q: supported types are bool, int, float, vector, matrix", s)
	}
	return t, nil
}

// Direction tells whether a parameter is consumed or produced by a function.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	if d == Out {
		return "out"
	}
	return "in"
}

// ParseDirection converts a manifest keyword (`in` or `out`) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "in":
		return In, nil
	case "out":
		return Out, nil
	default:
		return In, fmt.Errorf("unsupported parameter direction %q: must be 'in' or 'out'", s)
	}
}
