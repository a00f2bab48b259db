package synth

import (
	"strings"

	"github.com/toyz/implgen/internal/models"
)

// blockSeparator joins the top-level fragments of a generated source unit.
const blockSeparator = "\n\n"

// joinNonEmpty concatenates parts with the separator, skipping empty
// fragments so dropped blocks never leave stray separators behind.
func joinNonEmpty(separator string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, separator)
}

func joinWithSpaces(parts ...string) string {
	return joinNonEmpty(" ", parts...)
}

func joinBlocks(parts ...string) string {
	return joinNonEmpty(blockSeparator, parts...)
}

// memberModifiers renders a member's modifiers for a concrete override.
// The native, transient and abstract qualifiers never apply to generated
// bodies and are stripped uniformly for methods and constructors.
func memberModifiers(m *models.MemberDescriptor) string {
	return (m.Mods &^ (models.ModNative | models.ModTransient | models.ModAbstract)).String()
}

// parameterList renders the typed parameter list for a member, drawing each
// name from a Namer scoped to exactly this member.
func parameterList(m *models.MemberDescriptor, namer *Namer) (string, []string) {
	decls := make([]string, 0, len(m.Params))
	names := make([]string, 0, len(m.Params))
	for _, param := range m.Params {
		name := namer.Next()
		names = append(names, name)
		decls = append(decls, joinWithSpaces(param.CanonicalName(), name))
	}
	return "(" + strings.Join(decls, ", ") + ")", names
}

// throwsClause renders the exceptions clause, or an empty string when the
// member declares none.
func throwsClause(m *models.MemberDescriptor) string {
	if len(m.Throws) == 0 {
		return ""
	}
	names := make([]string, 0, len(m.Throws))
	for _, t := range m.Throws {
		names = append(names, t.CanonicalName())
	}
	return "throws " + strings.Join(names, ", ")
}

// defaultValue returns the fixed value a generated body returns for the
// given type: null for references, false for boolean, nothing for void and
// zero for every other primitive.
func defaultValue(t *models.TypeDescriptor) string {
	if !t.IsPrimitive() {
		return "null"
	}
	switch t.Name {
	case "void":
		return ""
	case "boolean":
		return "false"
	default:
		return "0"
	}
}

// SynthesizeMethod generates the overriding declaration for one abstract
// method, with a single default-value return statement as its body.
func SynthesizeMethod(m *models.MemberDescriptor) models.SynthesizedMember {
	params, names := parameterList(m, NewNamer())
	body := "return " + defaultValue(m.Returns) + ";"
	text := joinWithSpaces(
		memberModifiers(m),
		m.Returns.CanonicalName(),
		m.Name+params,
		throwsClause(m),
		"{", body, "}",
	)
	return models.SynthesizedMember{Text: text, ParamNames: names}
}

// SynthesizeConstructor replicates one ancestor constructor on the generated
// class, delegating to super by parameter position.
func SynthesizeConstructor(m *models.MemberDescriptor, className string) models.SynthesizedMember {
	params, names := parameterList(m, NewNamer())
	body := "super(" + strings.Join(names, ", ") + ");"
	text := joinWithSpaces(
		memberModifiers(m),
		className+params,
		throwsClause(m),
		"{", body, "}",
	)
	return models.SynthesizedMember{Text: text, ParamNames: names}
}
