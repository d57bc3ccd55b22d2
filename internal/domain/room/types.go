package room

type Type string

const (
	TypeSingle       Type = "SINGLE"
	TypeDouble       Type = "DOUBLE"
	TypePresidential Type = "PRESIDENTIAL"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypePresidential:
		return true
	default:
		return false
	}
}

type View string

const (
	ViewExterior View = "EXTERIOR"
	ViewInterior View = "INTERIOR"
)

func (v View) String() string {
	return string(v)
}

func (v View) IsValid() bool {
	switch v {
	case ViewExterior, ViewInterior:
		return true
	default:
		return false
	}
}
