package models

// TypeKind identifies the category of a type descriptor.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindPrimitive
	KindArray
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// EnumRootName is the canonical name of the enumeration base type, which can
// never be implemented by a generated subclass.
const EnumRootName = "java.lang.Enum"

// TypeDescriptor is a read-only view over a loaded type's metadata: its
// modifiers, lineage and declared members. Descriptors are produced by the
// upstream stub loader and are never mutated by the synthesis pipeline.
type TypeDescriptor struct {
	Kind         TypeKind
	Mods         Modifiers
	Name         string // simple name
	Package      string // empty for the default package and for primitives
	Superclass   *TypeDescriptor
	Interfaces   []*TypeDescriptor
	Constructors []*MemberDescriptor
	Declared     []*MemberDescriptor // declared methods, in declaration order
	Component    *TypeDescriptor     // element type for array descriptors
}

// CanonicalName returns the fully qualified Java name of the type, e.g.
// "java.util.List", "int" or "java.lang.String[]".
func (t *TypeDescriptor) CanonicalName() string {
	if t.Kind == KindArray {
		return t.Component.CanonicalName() + "[]"
	}
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

func (t *TypeDescriptor) IsInterface() bool { return t.Kind == KindInterface }
func (t *TypeDescriptor) IsPrimitive() bool { return t.Kind == KindPrimitive }
func (t *TypeDescriptor) IsArray() bool     { return t.Kind == KindArray }

// Methods enumerates the publicly reachable methods of the type: its own
// public declared methods plus public methods inherited through the
// superclass chain and through all transitively implemented interfaces.
// Entries are deduplicated by signature with the most-derived declaration
// winning, which mirrors how runtime reflection enumerates a type.
func (t *TypeDescriptor) Methods() []*MemberDescriptor {
	var methods []*MemberDescriptor
	seen := make(map[string]bool)

	collect := func(owner *TypeDescriptor) {
		for _, m := range owner.Declared {
			if !m.Mods.IsPublic() {
				continue
			}
			key := m.Signature()
			if seen[key] {
				continue
			}
			seen[key] = true
			methods = append(methods, m)
		}
	}

	visited := make(map[*TypeDescriptor]bool)
	var walk func(owner *TypeDescriptor)
	walk = func(owner *TypeDescriptor) {
		if owner == nil || visited[owner] {
			return
		}
		visited[owner] = true
		collect(owner)
		walk(owner.Superclass)
		for _, iface := range owner.Interfaces {
			walk(iface)
		}
	}
	walk(t)

	return methods
}

// MemberDescriptor describes a single method or constructor: its modifiers,
// ordered parameter types, declared exception types and, for methods, the
// return type. A nil Returns marks a constructor.
type MemberDescriptor struct {
	Mods      Modifiers
	Name      string
	Params    []*TypeDescriptor
	Throws    []*TypeDescriptor
	Returns   *TypeDescriptor
	Declaring *TypeDescriptor
}

// IsConstructor reports whether the member is a constructor.
func (m *MemberDescriptor) IsConstructor() bool {
	return m.Returns == nil
}

// Signature returns the override identity of the member: its name plus the
// ordered canonical parameter type names. Two members with equal signatures
// cannot both be declared in one class body.
func (m *MemberDescriptor) Signature() string {
	sig := m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			sig += ","
		}
		sig += p.CanonicalName()
	}
	return sig + ")"
}
