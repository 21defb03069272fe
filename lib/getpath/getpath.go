// Package getpath resolves command-line paths when running under "bazel run",
// which changes the working directory.
package getpath

import (
	"os"
	"path/filepath"
)

var wd = os.Getenv("BUILD_WORKING_DIRECTORY")

// GetPath returns the path to the file, which will be correct even when run
// from Bazel.
func GetPath(filename string) string {
	return resolve(wd, filename)
}

// GetPaths calls GetPath on each filename.
func GetPaths(filenames []string) []string {
	r := make([]string, len(filenames))
	for i, f := range filenames {
		r[i] = GetPath(f)
	}
	return r
}

func resolve(dir, filename string) string {
	if filename != "" && dir != "" && !filepath.IsAbs(filename) {
		return filepath.Join(dir, filename)
	}
	return filename
}
