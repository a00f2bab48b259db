package synth

import (
	"github.com/toyz/implgen/internal/models"
)

// AbstractMembers discovers the ordered set of abstract methods a generated
// subclass must override. Publicly reachable abstract methods are collected
// first (interface methods and normally visible inherited methods), then the
// superclass chain is walked for declared abstract methods with private or
// protected visibility, which the public enumeration cannot see but which
// still block concreteness. Entries are deduplicated by signature, most
// derived occurrence first.
//
// A private class anywhere in the superclass chain makes extension illegal
// and aborts the walk with InaccessibleAncestor.
func AbstractMembers(token *models.TypeDescriptor) ([]*models.MemberDescriptor, error) {
	var members []*models.MemberDescriptor
	seen := make(map[string]bool)

	add := func(m *models.MemberDescriptor) {
		key := m.Signature()
		if seen[key] {
			return
		}
		seen[key] = true
		members = append(members, m)
	}

	for _, m := range token.Methods() {
		if m.Mods.IsAbstract() {
			add(m)
		}
	}

	for level := token; level != nil; level = level.Superclass {
		if level.Mods.IsPrivate() {
			return nil, &models.ImplError{
				Type:    models.ErrorTypeInaccessibleAncestor,
				Token:   token.CanonicalName(),
				Message: "superclass " + level.CanonicalName() + " is private and cannot be extended",
				Context: map[string]interface{}{
					"ancestor": level.CanonicalName(),
				},
			}
		}
		for _, m := range level.Declared {
			if m.Mods.IsAbstract() && (m.Mods.IsPrivate() || m.Mods.IsProtected()) {
				add(m)
			}
		}
	}

	return members, nil
}

// ReplicableConstructors returns the non-private declared constructors of the
// token. Interfaces contribute none. A class that declares constructors but
// exposes none to a subclass cannot be concretely instantiated, which is
// reported as NoAccessibleConstructor.
func ReplicableConstructors(token *models.TypeDescriptor) ([]*models.MemberDescriptor, error) {
	if token.IsInterface() {
		return nil, nil
	}

	var ctors []*models.MemberDescriptor
	for _, c := range token.Constructors {
		if !c.Mods.IsPrivate() {
			ctors = append(ctors, c)
		}
	}
	if len(ctors) == 0 {
		return nil, &models.ImplError{
			Type:    models.ErrorTypeNoAccessibleConstructor,
			Token:   token.CanonicalName(),
			Message: "class has only private constructors",
			Suggestions: []string{
				"Expose at least one non-private constructor on the class",
			},
		}
	}
	return ctors, nil
}
