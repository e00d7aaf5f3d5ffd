package objectpath

import (
	"net/url"
	"strings"
)

// Parse splits a full object path into its directory part and leaf name.
// A single leading "/" is stripped, then the path splits at the last "/":
// everything before it is the directory (no trailing slash), everything
// after it is the leaf. A path with no separator is a bare leaf at the
// bucket root.
func Parse(fullPath string) (dir, leaf string) {
	p := strings.TrimPrefix(fullPath, "/")
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", p
	}
	return p[:i], p[i+1:]
}

// NormalizeDir rewrites a directory path into the prefix form stored keys
// use: a single leading "/" is stripped and a trailing "/" is appended if
// missing. The empty string denotes the bucket root and stays empty.
func NormalizeDir(dir string) string {
	d := strings.TrimPrefix(dir, "/")
	if d == "" {
		return ""
	}
	if !strings.HasSuffix(d, "/") {
		d += "/"
	}
	return d
}

// Join composes a full object key from a directory path and a leaf name.
func Join(dir, leaf string) string {
	return NormalizeDir(dir) + leaf
}

// IsDirKey reports whether a stored key is a directory marker. Directories
// exist in the flat keyspace as zero-byte objects whose key ends with "/".
func IsDirKey(key string) bool {
	return key != "" && strings.HasSuffix(key, "/")
}

// Encode percent-encodes an object key for use in a URL path. The "/"
// separators between segments are preserved.
func Encode(key string) string {
	segs := strings.Split(key, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
