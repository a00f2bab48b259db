package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/implgen/internal/models"
	"github.com/toyz/implgen/internal/utils"
)

func newTestImplementor(t *testing.T, stubs string) *Implementor {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "types.stub")
	require.NoError(t, os.WriteFile(path, []byte(stubs), 0644))

	im := NewImplementor(&Config{}, utils.NewQuietDiagnostics())
	require.NoError(t, im.LoadStubs([]string{path}))
	return im
}

func TestImplement_Interface(t *testing.T) {
	im := newTestImplementor(t, `
		package demo;
		public interface Sizeable {
			int size();
		}
	`)
	root := t.TempDir()

	class, err := im.Implement("demo.Sizeable", root)
	require.NoError(t, err)

	assert.Equal(t, "SizeableImpl", class.ClassName)
	assert.Equal(t, filepath.Join(root, "demo", "SizeableImpl.java"), class.FilePath)

	content, err := os.ReadFile(class.FilePath)
	require.NoError(t, err)
	assert.Equal(t,
		"package demo;\n\npublic class SizeableImpl implements demo.Sizeable {\n\npublic int size() { return 0; }\n\n}",
		string(content))
}

func TestImplement_AbstractClass(t *testing.T) {
	im := newTestImplementor(t, `
		package demo;
		public abstract class Shape {
			protected Shape(int);
			public abstract double area();
		}
	`)
	root := t.TempDir()

	class, err := im.Implement("demo.Shape", root)
	require.NoError(t, err)

	content, err := os.ReadFile(class.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "public class ShapeImpl extends demo.Shape {")
	assert.Contains(t, string(content), "protected ShapeImpl(int _0) { super(_0); }")
	assert.Contains(t, string(content), "public double area() { return 0; }")
}

func TestImplement_SummaryAccumulates(t *testing.T) {
	im := newTestImplementor(t, `
		package demo;
		public interface Sizeable {
			int size();
		}
		public interface Nameable {
			String name();
		}
	`)
	root := t.TempDir()

	_, err := im.Implement("demo.Sizeable", root)
	require.NoError(t, err)
	_, err = im.Implement("demo.Nameable", root)
	require.NoError(t, err)

	summary := im.Summary()
	assert.Equal(t, 2, summary.TypesImplemented)
	assert.Equal(t, 2, summary.MembersSynthesized)
	assert.Len(t, summary.GeneratedFiles, 2)
}

func TestImplement_UnknownType(t *testing.T) {
	im := NewImplementor(&Config{}, utils.NewQuietDiagnostics())

	_, err := im.Implement("demo.Missing", t.TempDir())

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnknownType))
}

func TestImplement_UnsupportedTokenWritesNothing(t *testing.T) {
	im := newTestImplementor(t, `
		package demo;
		public final class Sealed { }
	`)
	root := t.TempDir()

	_, err := im.Implement("demo.Sealed", root)

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeUnsupportedToken))
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "rejected tokens must not leave output behind")
}

func TestImplement_PrivateConstructorsWritesNothing(t *testing.T) {
	im := newTestImplementor(t, `
		package demo;
		public abstract class Hidden {
			private Hidden();
		}
	`)
	root := t.TempDir()

	_, err := im.Implement("demo.Hidden", root)

	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrorTypeNoAccessibleConstructor))
	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
