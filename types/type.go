package types

type Type string

const (
	TypeUnknown Type = "unknown"
	TypeAny     Type = "any"
	TypeInt     Type = "int"
	TypeBool    Type = "bool"
	TypeList    Type = "list"
)

func (t Type) String() string {
	return ":" + string(t)
}

// Accepts reports whether a value of type v may be passed where t is expected.
func (t Type) Accepts(v Type) bool {
	return t == TypeAny || t == v
}
