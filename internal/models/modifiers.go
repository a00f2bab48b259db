package models

import "strings"

// Modifiers is a bitset of Java declaration modifiers. The bit values match
// the constants defined by java.lang.reflect.Modifier so descriptors loaded
// from any javap-like source can carry their modifier word through unchanged.
type Modifiers int

const (
	ModPublic       Modifiers = 0x0001
	ModPrivate      Modifiers = 0x0002
	ModProtected    Modifiers = 0x0004
	ModStatic       Modifiers = 0x0008
	ModFinal        Modifiers = 0x0010
	ModSynchronized Modifiers = 0x0020
	ModVolatile     Modifiers = 0x0040
	ModTransient    Modifiers = 0x0080
	ModNative       Modifiers = 0x0100
	ModInterface    Modifiers = 0x0200
	ModAbstract     Modifiers = 0x0400
	ModStrict       Modifiers = 0x0800
)

// modifierNames lists modifiers in the canonical order used by
// java.lang.reflect.Modifier.toString, so generated declarations read the
// way javac would have accepted them.
var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrict, "strictfp"},
	{ModInterface, "interface"},
}

// ParseModifier maps a modifier keyword to its bit. Unknown keywords map to
// zero, which callers treat as a syntax error.
func ParseModifier(word string) Modifiers {
	switch word {
	case "public":
		return ModPublic
	case "protected":
		return ModProtected
	case "private":
		return ModPrivate
	case "abstract":
		return ModAbstract
	case "static":
		return ModStatic
	case "final":
		return ModFinal
	case "transient":
		return ModTransient
	case "volatile":
		return ModVolatile
	case "synchronized":
		return ModSynchronized
	case "native":
		return ModNative
	case "strictfp":
		return ModStrict
	case "interface":
		return ModInterface
	default:
		return 0
	}
}

// String renders the modifier set in canonical declaration order.
func (m Modifiers) String() string {
	var parts []string
	for _, entry := range modifierNames {
		if m&entry.bit != 0 {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, " ")
}

// Has reports whether every bit in mask is set.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask == mask
}

func (m Modifiers) IsPublic() bool    { return m.Has(ModPublic) }
func (m Modifiers) IsPrivate() bool   { return m.Has(ModPrivate) }
func (m Modifiers) IsProtected() bool { return m.Has(ModProtected) }
func (m Modifiers) IsAbstract() bool  { return m.Has(ModAbstract) }
func (m Modifiers) IsFinal() bool     { return m.Has(ModFinal) }
func (m Modifiers) IsStatic() bool    { return m.Has(ModStatic) }
func (m Modifiers) IsInterface() bool { return m.Has(ModInterface) }
