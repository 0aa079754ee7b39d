package mimetypes

import "mime"

type MIME string

const (
	Unknown          MIME = "unknown"
	ApplicationZip   MIME = "application/zip"
	ApplicationXZ    MIME = "application/x-xz"
	ApplicationGzip  MIME = "application/gzip"
	ApplicationTar   MIME = "application/x-tar"
	Application7z    MIME = "application/x-7z-compressed"
	ApplicationOctet MIME = "application/octet-stream"
)

// byExtension lists the sniffed type expected for archive extensions.
// Extensions absent from the map (".bin") accept any content.
var byExtension = map[string]MIME{
	".zip": ApplicationZip,
	".xz":  ApplicationXZ,
	".gz":  ApplicationGzip,
	".tar": ApplicationTar,
	".7z":  Application7z,
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Expected returns the type an extension implies, if any.
func Expected(ext string) (MIME, bool) {
	m, ok := byExtension[ext]
	return m, ok
}

// ConsistentWith reports whether the sniffed type agrees with the extension.
// Extensions without an expectation are always consistent.
func ConsistentWith(ext, detected string) bool {
	expected, ok := Expected(ext)
	if !ok {
		return true
	}
	_, matches := Matches(detected, expected)
	return matches
}
