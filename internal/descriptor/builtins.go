package descriptor

import (
	"github.com/toyz/implgen/internal/models"
)

// primitiveNames are the Java primitive types plus the void pseudo-type,
// which reflection also reports as primitive.
var primitiveNames = []string{
	"boolean", "byte", "char", "short", "int", "long", "float", "double", "void",
}

// registerBuiltins seeds the registry with the types every descriptor set can
// reference without declaring: the primitives and a small java.lang core.
// The built-in descriptors only carry the members the synthesis pipeline can
// observe; anything richer has to come from a stub file.
func (r *Registry) registerBuiltins() {
	for _, name := range primitiveNames {
		r.put(&models.TypeDescriptor{
			Kind: models.KindPrimitive,
			Mods: models.ModPublic | models.ModAbstract | models.ModFinal,
			Name: name,
		})
	}

	object := &models.TypeDescriptor{
		Kind:    models.KindClass,
		Mods:    models.ModPublic,
		Name:    "Object",
		Package: "java.lang",
	}
	object.Constructors = []*models.MemberDescriptor{
		{Mods: models.ModPublic, Name: "Object", Declaring: object},
	}
	str := r.putClass("java.lang", "String", models.ModPublic|models.ModFinal, object)
	boolean, _ := r.Get("boolean")
	intType, _ := r.Get("int")
	object.Declared = []*models.MemberDescriptor{
		{Mods: models.ModPublic, Name: "equals", Params: []*models.TypeDescriptor{object}, Returns: boolean, Declaring: object},
		{Mods: models.ModPublic | models.ModNative, Name: "hashCode", Returns: intType, Declaring: object},
		{Mods: models.ModPublic, Name: "toString", Returns: str, Declaring: object},
	}
	r.put(object)

	throwable := r.putClass("java.lang", "Throwable", models.ModPublic, object)
	exception := r.putClass("java.lang", "Exception", models.ModPublic, throwable)
	r.putClass("java.lang", "RuntimeException", models.ModPublic, exception)
	r.putClass("java.lang", "Error", models.ModPublic, throwable)
	r.putClass("java.io", "IOException", models.ModPublic, exception)

	enum := &models.TypeDescriptor{
		Kind:       models.KindClass,
		Mods:       models.ModPublic | models.ModAbstract,
		Name:       "Enum",
		Package:    "java.lang",
		Superclass: object,
	}
	enum.Constructors = []*models.MemberDescriptor{
		{Mods: models.ModProtected, Name: "Enum", Params: []*models.TypeDescriptor{str, intType}, Declaring: enum},
	}
	r.put(enum)

	runnable := &models.TypeDescriptor{
		Kind:    models.KindInterface,
		Mods:    models.ModPublic | models.ModInterface | models.ModAbstract,
		Name:    "Runnable",
		Package: "java.lang",
	}
	voidType, _ := r.Get("void")
	runnable.Declared = []*models.MemberDescriptor{
		{Mods: models.ModPublic | models.ModAbstract, Name: "run", Returns: voidType, Declaring: runnable},
	}
	r.put(runnable)
}

// putClass registers a plain built-in class with a public no-arg constructor.
func (r *Registry) putClass(pkg, name string, mods models.Modifiers, superclass *models.TypeDescriptor) *models.TypeDescriptor {
	t := &models.TypeDescriptor{
		Kind:       models.KindClass,
		Mods:       mods,
		Name:       name,
		Package:    pkg,
		Superclass: superclass,
	}
	t.Constructors = []*models.MemberDescriptor{
		{Mods: models.ModPublic, Name: name, Declaring: t},
	}
	r.put(t)
	return t
}
