package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir ensures the parent directory of path exists, creating it if necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}

// SlashDir returns the directory part of a registry source path using
// forward slashes. Backslashes are treated as separators, trailing
// separators are ignored and the path is not cleaned, so "./a/b.html"
// yields "./a". A bare file name yields ".".
func SlashDir(source string) string {
	p := trimTrailingSlashes(strings.ReplaceAll(source, `\`, "/"))
	i := strings.LastIndex(p, "/")
	switch {
	case i < 0:
		return "."
	case i == 0:
		return "/"
	}
	return trimTrailingSlashes(p[:i])
}

func trimTrailingSlashes(p string) string {
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}

// CountSegments counts the non-empty "/"-separated segments of p
func CountSegments(p string) int {
	n := 0
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			n++
		}
	}
	return n
}
