package descriptor

import (
	"strings"

	"github.com/toyz/implgen/internal/models"
	"github.com/toyz/implgen/internal/utils"
)

// Registry maps canonical type names to linked descriptors. It is seeded
// with the built-in primitives and java.lang core and grows as stub files
// are loaded. Array descriptors are materialized on demand and cached, so
// repeated references to the same array type share one descriptor.
type Registry struct {
	types *utils.Registry[string, *models.TypeDescriptor]
}

// NewRegistry creates a registry seeded with the built-in types.
func NewRegistry() *Registry {
	r := &Registry{
		types: utils.NewRegistry[string, *models.TypeDescriptor](),
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) put(t *models.TypeDescriptor) {
	r.types.Register(t.CanonicalName(), t)
}

// Get retrieves a descriptor without materializing arrays.
func (r *Registry) Get(name string) (*models.TypeDescriptor, bool) {
	return r.types.Get(name)
}

// Has checks whether a canonical name is registered.
func (r *Registry) Has(name string) bool {
	return r.types.Has(name)
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return r.types.Len()
}

// Names returns all registered canonical names in deterministic order.
func (r *Registry) Names() []string {
	return utils.SortedKeys(r.types)
}

// Resolve looks up a canonical type name, materializing array descriptors
// for "T[]" references. Unresolvable names are reported as UnknownType.
func (r *Registry) Resolve(name string) (*models.TypeDescriptor, error) {
	if t, ok := r.types.Get(name); ok {
		return t, nil
	}

	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		component, err := r.Resolve(elem)
		if err != nil {
			return nil, err
		}
		arr := &models.TypeDescriptor{
			Kind:      models.KindArray,
			Mods:      models.ModPublic | models.ModAbstract | models.ModFinal,
			Name:      component.Name,
			Package:   component.Package,
			Component: component,
		}
		r.put(arr)
		return arr, nil
	}

	return nil, &models.ImplError{
		Type:    models.ErrorTypeUnknownType,
		Token:   name,
		Message: "type is not declared in any loaded descriptor stub",
		Suggestions: []string{
			"Add a stub declaration for the type",
			"Check the -stubs paths passed to the tool",
		},
	}
}

// resolveOpaque resolves a member-signature reference, materializing an
// opaque public class for names no stub declares. Signature types only need
// a canonical name to be replicated in generated text, so requiring a full
// stub for each of them would make descriptor sets needlessly heavy.
func (r *Registry) resolveOpaque(name string) (*models.TypeDescriptor, error) {
	if t, err := r.Resolve(name); err == nil {
		return t, nil
	} else if !models.IsErrorType(err, models.ErrorTypeUnknownType) {
		return nil, err
	}

	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		component, err := r.resolveOpaque(elem)
		if err != nil {
			return nil, err
		}
		return r.Resolve(component.CanonicalName() + "[]")
	}

	pkg, simple := splitCanonical(name)
	object, _ := r.Get("java.lang.Object")
	opaque := &models.TypeDescriptor{
		Kind:       models.KindClass,
		Mods:       models.ModPublic,
		Name:       simple,
		Package:    pkg,
		Superclass: object,
	}
	r.put(opaque)
	return opaque, nil
}

// splitCanonical splits a canonical name into package and simple name.
func splitCanonical(name string) (string, string) {
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx], name[idx+1:]
	}
	return "", name
}
