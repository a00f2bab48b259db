package synth

import (
	"github.com/toyz/implgen/internal/models"
)

// Descriptor builders shared by the synthesis tests. They model the small
// slice of a type system the pipeline observes, mirroring what the stub
// loader would produce.

func typePrimitive(name string) *models.TypeDescriptor {
	return &models.TypeDescriptor{
		Kind: models.KindPrimitive,
		Mods: models.ModPublic | models.ModFinal,
		Name: name,
	}
}

func typeClass(pkg, name string, mods models.Modifiers) *models.TypeDescriptor {
	return &models.TypeDescriptor{
		Kind:    models.KindClass,
		Mods:    mods,
		Name:    name,
		Package: pkg,
	}
}

func typeInterface(pkg, name string) *models.TypeDescriptor {
	return &models.TypeDescriptor{
		Kind:    models.KindInterface,
		Mods:    models.ModPublic | models.ModInterface | models.ModAbstract,
		Name:    name,
		Package: pkg,
	}
}

func typeArray(component *models.TypeDescriptor) *models.TypeDescriptor {
	return &models.TypeDescriptor{
		Kind:      models.KindArray,
		Mods:      models.ModPublic | models.ModFinal,
		Name:      component.Name,
		Package:   component.Package,
		Component: component,
	}
}

func method(owner *models.TypeDescriptor, mods models.Modifiers, name string, returns *models.TypeDescriptor, params ...*models.TypeDescriptor) *models.MemberDescriptor {
	m := &models.MemberDescriptor{
		Mods:      mods,
		Name:      name,
		Params:    params,
		Returns:   returns,
		Declaring: owner,
	}
	owner.Declared = append(owner.Declared, m)
	return m
}

func constructor(owner *models.TypeDescriptor, mods models.Modifiers, params ...*models.TypeDescriptor) *models.MemberDescriptor {
	c := &models.MemberDescriptor{
		Mods:      mods,
		Name:      owner.Name,
		Params:    params,
		Declaring: owner,
	}
	owner.Constructors = append(owner.Constructors, c)
	return c
}
