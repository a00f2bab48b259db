package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/implgen/internal/models"
)

func TestAssemble_Interface(t *testing.T) {
	iface := typeInterface("demo", "Sizeable")
	method(iface, models.ModPublic|models.ModAbstract, "size", typePrimitive("int"))

	class, err := Assemble(iface)

	require.NoError(t, err)
	assert.Equal(t, "SizeableImpl", class.ClassName)
	assert.Equal(t, "demo", class.Package)
	assert.Equal(t, 0, class.Constructors, "interfaces never carry constructors")
	assert.Equal(t, 1, class.Methods)
	assert.Equal(t,
		"package demo;\n\n"+
			"public class SizeableImpl implements demo.Sizeable {\n\n"+
			"public int size() { return 0; }\n\n"+
			"}",
		class.Content)
}

func TestAssemble_AbstractClassWithProtectedConstructor(t *testing.T) {
	base := typeClass("demo", "Base", models.ModPublic|models.ModAbstract)
	constructor(base, models.ModProtected)

	class, err := Assemble(base)

	require.NoError(t, err)
	assert.Equal(t, 1, class.Constructors)
	assert.Equal(t, 0, class.Methods)
	assert.Equal(t,
		"package demo;\n\n"+
			"public class BaseImpl extends demo.Base {\n\n"+
			"protected BaseImpl() { super(); }\n\n"+
			"}",
		class.Content)
}

func TestAssemble_OnlyPrivateConstructorFails(t *testing.T) {
	locked := typeClass("demo", "Locked", models.ModPublic)
	constructor(locked, models.ModPrivate)

	_, err := Assemble(locked)

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeNoAccessibleConstructor))
}

func TestAssemble_FinalClassFails(t *testing.T) {
	sealed := typeClass("demo", "Sealed", models.ModPublic|models.ModFinal)
	constructor(sealed, models.ModPublic)

	_, err := Assemble(sealed)

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnsupportedToken))
}

func TestAssemble_DefaultPackageOmitsPackageStatement(t *testing.T) {
	iface := typeInterface("", "Standalone")
	method(iface, models.ModPublic|models.ModAbstract, "run", typePrimitive("void"))

	class, err := Assemble(iface)

	require.NoError(t, err)
	assert.NotContains(t, class.Content, "package")
	assert.Equal(t,
		"public class StandaloneImpl implements Standalone {\n\n"+
			"public void run() { return ; }\n\n"+
			"}",
		class.Content)
}

func TestAssemble_ConstructorsPrecedeMethods(t *testing.T) {
	base := typeClass("demo", "Shape", models.ModPublic|models.ModAbstract)
	constructor(base, models.ModPublic, typePrimitive("int"))
	method(base, models.ModPublic|models.ModAbstract, "area", typePrimitive("double"))

	class, err := Assemble(base)

	require.NoError(t, err)
	ctorIdx := indexOf(t, class.Content, "public ShapeImpl(int _0) { super(_0); }")
	methodIdx := indexOf(t, class.Content, "public double area() { return 0; }")
	assert.Less(t, ctorIdx, methodIdx)
}

func TestAssemble_Idempotent(t *testing.T) {
	base := typeClass("demo", "Repeat", models.ModPublic|models.ModAbstract)
	constructor(base, models.ModPublic, typePrimitive("long"), typeClass("java.lang", "String", models.ModPublic|models.ModFinal))
	method(base, models.ModProtected|models.ModAbstract, "step", typePrimitive("boolean"))

	first, err := Assemble(base)
	require.NoError(t, err)
	second, err := Assemble(base)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestImplName(t *testing.T) {
	assert.Equal(t, "ListImpl", ImplName(typeInterface("java.util", "List")))
	assert.Equal(t, "BaseImpl", ImplName(typeClass("demo", "Base", models.ModPublic)))
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in assembled source", needle)
	return idx
}
