package uriutil

import (
	"net/url"
	"path/filepath"
	"strings"
)

// PathToURI converts a file system path to a file:// URI.
// The path is made absolute and each segment percent-encoded, so
// /home/user/Foo Bar becomes file:///home/user/Foo%20Bar.
func PathToURI(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	absPath = filepath.ToSlash(absPath)
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	segments := strings.Split(absPath, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}

	return "file://" + strings.Join(segments, "/")
}

// URIToPath converts a file:// URI to a file system path, percent-decoding
// segments. Non-file URIs and unparseable strings fall back to lenient prefix
// stripping so diagnostics still get a usable filename.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uriFallback(uri)
	}

	path := parsed.Path
	if parsed.Host != "" {
		// UNC-style URI; keep host and path together
		return parsed.Host + path
	}

	decodedPath, err := url.PathUnescape(path)
	if err != nil {
		decodedPath = path
	}

	// Windows URIs carry the drive letter as /C:/proj
	if len(decodedPath) >= 3 && decodedPath[0] == '/' && decodedPath[2] == ':' {
		decodedPath = decodedPath[1:]
	}

	return filepath.FromSlash(decodedPath)
}

func uriFallback(uri string) string {
	path := strings.TrimPrefix(uri, "file://")

	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}
