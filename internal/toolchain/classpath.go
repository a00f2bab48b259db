package toolchain

import "runtime"

// classpathSeparator is the platform's classpath entry separator, matching
// java.io.File.pathSeparatorChar.
var classpathSeparator = func() rune {
	if runtime.GOOS == "windows" {
		return ';'
	}
	return ':'
}()
