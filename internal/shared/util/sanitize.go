package util

import (
	"path"
	"strings"
)

// SanitizeFileName strips directory components from a client-supplied file
// name so it is safe to echo into logs and error messages. Returns "" for
// names that carry no usable base name.
func SanitizeFileName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)
	if s == "." || s == "/" || s == ".." {
		return ""
	}
	return s
}
