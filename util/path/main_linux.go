//go:build linux

package path

import "path/filepath"

func BeforeWrite(path string) string {
	return path
}

func AfterGetAbsPath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
