package storage

import "strings"

// Scheme is the URI scheme selecting object storage instead of the local filesystem.
const Scheme = "s3://"

// ParseURI splits an "s3://bucket/key" URI into bucket and object name.
// It returns false for paths that are not storage URIs or lack either part.
func ParseURI(uri string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(uri, Scheme)
	if !found {
		return "", "", false
	}
	bucket, object, found = strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", false
	}
	return bucket, object, true
}

// IsURI reports whether the path uses the storage scheme.
func IsURI(path string) bool {
	return strings.HasPrefix(path, Scheme)
}
