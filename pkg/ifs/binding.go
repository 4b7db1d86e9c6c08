package ifs

import "fmt"

// Binding describes how the values of a property are attached to a mesh
type Binding int

const (
	// BindingNone means the property is absent
	BindingNone Binding = iota
	// BindingPerVertex has one value per vertex
	BindingPerVertex
	// BindingPerFace has one value per face
	BindingPerFace
	// BindingPerFaceIndexed has one index into the values per face
	BindingPerFaceIndexed
	// BindingPerCorner has one index into the values per position of the
	// coordinate index, with -1 at the face separators
	BindingPerCorner
)

var bindingNames = map[Binding]string{
	BindingNone:           "none",
	BindingPerVertex:      "per_vertex",
	BindingPerFace:        "per_face",
	BindingPerFaceIndexed: "per_face_indexed",
	BindingPerCorner:      "per_corner",
}

func (b Binding) String() string {
	if name, ok := bindingNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Binding(%d)", int(b))
}

// MarshalText encodes the binding by name
func (b Binding) MarshalText() ([]byte, error) {
	name, ok := bindingNames[b]
	if !ok {
		return nil, fmt.Errorf("unknown binding %d", int(b))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a binding name
func (b *Binding) UnmarshalText(text []byte) error {
	for binding, name := range bindingNames {
		if name == string(text) {
			*b = binding
			return nil
		}
	}
	return fmt.Errorf("unknown binding %q", string(text))
}

// Indexed reports whether the binding uses an index array
func (b Binding) Indexed() bool {
	return b == BindingPerFaceIndexed || b == BindingPerCorner
}
