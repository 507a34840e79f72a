package fsutil

import (
	"os"
	"path/filepath"
)

// GetProjectRoot returns the closest directory holding go.mod, starting from
// the working directory. "go test" runs inside the package dir, so we walk up.
func GetProjectRoot() string {
	if os.Getenv("GO_ENV") == "prod" {
		return "./"
	}

	wd, err := os.Getwd()
	if err != nil {
		return "./"
	}

	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}
