package synth

import (
	"github.com/toyz/implgen/internal/models"
)

// ImplName returns the simple name of the class generated for a token.
func ImplName(token *models.TypeDescriptor) string {
	return token.Name + "Impl"
}

// classModifiers renders the token's modifiers for the generated class
// header. The interface, abstract, static and protected qualifiers cannot
// appear on a concrete top-level class and are masked out.
func classModifiers(token *models.TypeDescriptor) string {
	mask := models.ModInterface | models.ModAbstract | models.ModStatic | models.ModProtected
	return (token.Mods &^ mask).String()
}

// inheritanceClause renders how the generated class hooks onto the token:
// implements for interfaces, extends otherwise.
func inheritanceClause(token *models.TypeDescriptor) string {
	keyword := "extends"
	if token.IsInterface() {
		keyword = "implements"
	}
	return keyword + " " + token.CanonicalName()
}

// packageStatement renders the package declaration, or an empty string for
// types in the default package.
func packageStatement(token *models.TypeDescriptor) string {
	if token.Package == "" {
		return ""
	}
	return "package " + token.Package + ";"
}

// Assemble builds the complete source unit for an implementation of the
// token: package statement, class header, replicated constructors and
// default-value overrides of every abstract member, joined as blank-line
// separated blocks. The returned content is unescaped; callers apply the
// text escaper before emitting. No partial output is produced: any failure
// while walking the hierarchy or replicating constructors aborts assembly
// with nothing written.
func Assemble(token *models.TypeDescriptor) (*models.GeneratedClass, error) {
	if err := Validate(token); err != nil {
		return nil, err
	}

	className := ImplName(token)

	ctors, err := ReplicableConstructors(token)
	if err != nil {
		return nil, err
	}
	methods, err := AbstractMembers(token)
	if err != nil {
		return nil, err
	}

	ctorBlock := ""
	for _, c := range ctors {
		ctorBlock = joinBlocks(ctorBlock, SynthesizeConstructor(c, className).Text)
	}
	methodBlock := ""
	for _, m := range methods {
		methodBlock = joinBlocks(methodBlock, SynthesizeMethod(m).Text)
	}

	header := joinWithSpaces(classModifiers(token), "class", className, inheritanceClause(token))
	body := joinBlocks(header+" {", ctorBlock, methodBlock, "}")
	content := joinBlocks(packageStatement(token), body)

	return &models.GeneratedClass{
		TypeName:     token.CanonicalName(),
		ClassName:    className,
		Package:      token.Package,
		Content:      content,
		Constructors: len(ctors),
		Methods:      len(methods),
	}, nil
}
