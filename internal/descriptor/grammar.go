package descriptor

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The stub grammar is a compact, javap-like view of a compiled type: one
// optional package statement followed by any number of type declarations
// whose members are bodiless signatures.
//
//	package java.util;
//
//	public abstract class AbstractList extends java.util.AbstractCollection {
//	    protected AbstractList();
//	    public abstract java.lang.Object get(int);
//	    public abstract int size();
//	}

// StubFile is the root of a parsed descriptor stub file.
type StubFile struct {
	Package string      `parser:"('package' @(QualIdent|Ident) ';')?"`
	Types   []*TypeStub `parser:"@@*"`
}

// TypeStub is one class or interface declaration.
type TypeStub struct {
	Modifiers  []string      `parser:"@Modifier*"`
	Kind       string        `parser:"@('class'|'interface')"`
	Name       string        `parser:"@Ident"`
	Extends    []*TypeRef    `parser:"('extends' @@ (',' @@)*)?"`
	Implements []*TypeRef    `parser:"('implements' @@ (',' @@)*)?"`
	Members    []*MemberStub `parser:"'{' @@* '}'"`
}

// MemberStub is one bodiless member signature. A missing Name marks a
// constructor, whose First token must match the declaring type's simple
// name.
type MemberStub struct {
	Modifiers []string   `parser:"@Modifier*"`
	First     *TypeRef   `parser:"@@"`
	Name      *string    `parser:"@Ident?"`
	Params    []*TypeRef `parser:"'(' (@@ (',' @@)*)? ')'"`
	Throws    []*TypeRef `parser:"('throws' @@ (',' @@)*)? ';'"`
}

// TypeRef is a possibly-qualified type name with array dimensions.
type TypeRef struct {
	Name string   `parser:"@(QualIdent|Ident)"`
	Dims []string `parser:"@Array*"`
}

// String reconstructs the referenced canonical name, e.g. "int[][]".
func (r *TypeRef) String() string {
	name := r.Name
	for range r.Dims {
		name += "[]"
	}
	return name
}

// IsConstructor reports whether the member stub parsed as a constructor.
func (m *MemberStub) IsConstructor() bool {
	return m.Name == nil
}

var stubLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Modifier", Pattern: `\b(public|protected|private|abstract|static|final|native|transient|synchronized|strictfp|volatile)\b`},
	{Name: "QualIdent", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*(\.[a-zA-Z_$][a-zA-Z0-9_$]*)+`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Array", Pattern: `\[\s*\]`},
	{Name: "Punct", Pattern: `[{}();,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var stubParser = participle.MustBuild[StubFile](
	participle.Lexer(stubLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseStub parses descriptor stub text. The filename is used only for
// error positions.
func ParseStub(filename, source string) (*StubFile, error) {
	return stubParser.ParseString(filename, source)
}
