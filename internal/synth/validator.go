package synth

import (
	"github.com/toyz/implgen/internal/models"
)

// Validate decides whether an implementation of the given token is
// constructible at all. It is the single gate before any synthesis work:
// primitives, arrays, the enumeration root and final or private types can
// never be subclassed.
func Validate(token *models.TypeDescriptor) error {
	switch {
	case token.IsPrimitive():
		return unsupported(token, "primitive types cannot be implemented")
	case token.IsArray():
		return unsupported(token, "array types cannot be implemented")
	case token.CanonicalName() == models.EnumRootName:
		return unsupported(token, "the enumeration base type cannot be implemented")
	case token.Mods.IsFinal():
		return unsupported(token, "final types cannot be extended")
	case token.Mods.IsPrivate():
		return unsupported(token, "private types cannot be extended")
	}
	return nil
}

func unsupported(token *models.TypeDescriptor, reason string) error {
	return &models.ImplError{
		Type:    models.ErrorTypeUnsupportedToken,
		Token:   token.CanonicalName(),
		Message: reason,
		Suggestions: []string{
			"Pass a non-final class or an interface",
			"Check the type's modifiers in its descriptor stub",
		},
	}
}
