package utils

import "strings"

// AbsoluteURL rewrites a stored relative upload path into an absolute URL by
// prefixing base. Values that already carry a scheme are returned unchanged,
// which also makes the rewrite idempotent. Empty values stay empty.
func AbsoluteURL(base, path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// AbsoluteURLs applies AbsoluteURL to every element of paths.
func AbsoluteURLs(base string, paths []string) []string {
	if len(paths) == 0 {
		return paths
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = AbsoluteURL(base, p)
	}
	return out
}
