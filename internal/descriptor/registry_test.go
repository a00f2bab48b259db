package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/implgen/internal/models"
)

func TestRegistry_Builtins(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"boolean", "byte", "char", "short", "int", "long", "float", "double", "void"} {
		typ, err := registry.Resolve(name)
		require.NoError(t, err, name)
		assert.True(t, typ.IsPrimitive(), name)
	}

	object, err := registry.Resolve("java.lang.Object")
	require.NoError(t, err)
	assert.Equal(t, models.KindClass, object.Kind)
	assert.Nil(t, object.Superclass)

	str, err := registry.Resolve("java.lang.String")
	require.NoError(t, err)
	assert.True(t, str.Mods.IsFinal())
	assert.Same(t, object, str.Superclass)

	enum, err := registry.Resolve(models.EnumRootName)
	require.NoError(t, err)
	assert.True(t, enum.Mods.IsAbstract())

	runnable, err := registry.Resolve("java.lang.Runnable")
	require.NoError(t, err)
	assert.True(t, runnable.IsInterface())
	require.Len(t, runnable.Declared, 1)
	assert.Equal(t, "run", runnable.Declared[0].Name)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("com.example.Missing")

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnknownType))
}

func TestRegistry_ResolveArray(t *testing.T) {
	registry := NewRegistry()

	arr, err := registry.Resolve("int[]")
	require.NoError(t, err)
	assert.True(t, arr.IsArray())
	assert.Equal(t, "int[]", arr.CanonicalName())

	again, err := registry.Resolve("int[]")
	require.NoError(t, err)
	assert.Same(t, arr, again, "array descriptors are cached")

	nested, err := registry.Resolve("java.lang.String[][]")
	require.NoError(t, err)
	assert.Equal(t, "java.lang.String[][]", nested.CanonicalName())
	assert.Equal(t, "java.lang.String[]", nested.Component.CanonicalName())
}

func TestRegistry_ResolveArrayOfUnknown(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Resolve("com.example.Missing[]")

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnknownType))
}

func TestSplitCanonical(t *testing.T) {
	pkg, simple := splitCanonical("java.util.List")
	assert.Equal(t, "java.util", pkg)
	assert.Equal(t, "List", simple)

	pkg, simple = splitCanonical("Standalone")
	assert.Empty(t, pkg)
	assert.Equal(t, "Standalone", simple)
}
