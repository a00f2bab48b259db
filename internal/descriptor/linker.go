package descriptor

import (
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// link resolves every pending stub's supertypes and member signatures
// against the registry. Supertype references must name a declared or
// built-in type; member-signature references may fall back to opaque
// descriptors, since only their canonical name matters to synthesis.
func (l *Loader) link() error {
	pending := l.pending
	l.pending = nil

	for _, p := range pending {
		if err := l.linkSupertypes(p); err != nil {
			return err
		}
	}
	for _, p := range pending {
		if err := l.linkMembers(p); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) linkSupertypes(p pendingType) error {
	if p.typ.IsInterface() {
		// "extends" on an interface names its super-interfaces.
		for _, ref := range p.stub.Extends {
			super, err := l.registry.Resolve(l.qualify(p.pkg, ref))
			if err != nil {
				return err
			}
			p.typ.Interfaces = append(p.typ.Interfaces, super)
		}
	} else {
		if len(p.stub.Extends) > 1 {
			return l.syntaxError(p, "a class can extend at most one superclass")
		}
		if len(p.stub.Extends) == 1 {
			super, err := l.registry.Resolve(l.qualify(p.pkg, p.stub.Extends[0]))
			if err != nil {
				return err
			}
			p.typ.Superclass = super
		} else {
			object, _ := l.registry.Get("java.lang.Object")
			p.typ.Superclass = object
		}
	}

	for _, ref := range p.stub.Implements {
		iface, err := l.registry.Resolve(l.qualify(p.pkg, ref))
		if err != nil {
			return err
		}
		p.typ.Interfaces = append(p.typ.Interfaces, iface)
	}
	return nil
}

func (l *Loader) linkMembers(p pendingType) error {
	for _, member := range p.stub.Members {
		mods, err := parseModifierList(p.file, member.Modifiers)
		if err != nil {
			return err
		}

		if member.IsConstructor() {
			if p.typ.IsInterface() {
				return l.syntaxError(p, "interfaces cannot declare constructors")
			}
			if member.First.Name != p.typ.Name || len(member.First.Dims) > 0 {
				return l.syntaxError(p, "constructor name "+member.First.String()+" does not match type "+p.typ.Name)
			}
			ctor := &models.MemberDescriptor{
				Mods:      mods,
				Name:      p.typ.Name,
				Declaring: p.typ,
			}
			if err := l.linkSignature(p, ctor, member); err != nil {
				return err
			}
			p.typ.Constructors = append(p.typ.Constructors, ctor)
			continue
		}

		// Interface members are implicitly public and abstract unless the
		// stub says otherwise, matching how javac treats them.
		if p.typ.IsInterface() && mods&(models.ModPublic|models.ModPrivate|models.ModProtected) == 0 {
			mods |= models.ModPublic | models.ModAbstract
		}

		returns, err := l.registry.resolveOpaque(l.qualify(p.pkg, member.First))
		if err != nil {
			return err
		}
		method := &models.MemberDescriptor{
			Mods:      mods,
			Name:      *member.Name,
			Returns:   returns,
			Declaring: p.typ,
		}
		if err := l.linkSignature(p, method, member); err != nil {
			return err
		}
		p.typ.Declared = append(p.typ.Declared, method)
	}

	// A class stub with no declared constructors gets the implicit public
	// no-arg constructor javac would have emitted.
	if !p.typ.IsInterface() && len(p.typ.Constructors) == 0 {
		p.typ.Constructors = []*models.MemberDescriptor{
			{Mods: models.ModPublic, Name: p.typ.Name, Declaring: p.typ},
		}
	}
	return nil
}

func (l *Loader) linkSignature(p pendingType, target *models.MemberDescriptor, member *MemberStub) error {
	for _, ref := range member.Params {
		param, err := l.registry.resolveOpaque(l.qualify(p.pkg, ref))
		if err != nil {
			return err
		}
		target.Params = append(target.Params, param)
	}
	for _, ref := range member.Throws {
		thrown, err := l.registry.resolveOpaque(l.qualify(p.pkg, ref))
		if err != nil {
			return err
		}
		target.Throws = append(target.Throws, thrown)
	}
	return nil
}

// qualify resolves a type reference relative to the declaring package.
// Dotted names are already canonical. Unqualified names resolve to a
// primitive or registered top-level name first, then to a same-package
// type, then to java.lang; names that match nothing stay in the declaring
// package so opaque resolution materializes them there.
func (l *Loader) qualify(pkg string, ref *TypeRef) string {
	name := ref.String()
	base := ref.Name
	if strings.Contains(base, ".") {
		return name
	}
	suffix := strings.TrimPrefix(name, base)
	if l.registry.Has(base) {
		return name
	}
	if pkg != "" && l.registry.Has(pkg+"."+base) {
		return pkg + "." + base + suffix
	}
	if l.registry.Has("java.lang." + base) {
		return "java.lang." + base + suffix
	}
	if pkg == "" {
		return name
	}
	return pkg + "." + base + suffix
}

func (l *Loader) syntaxError(p pendingType, message string) error {
	return &models.ImplError{
		Type:    models.ErrorTypeDescriptorSyntax,
		Token:   p.typ.CanonicalName(),
		Message: message,
		Context: map[string]interface{}{"file": p.file},
	}
}

