// Package formdata extracts a single uploaded file from a buffered
// multipart/form-data body.
//
// It is a deliberate subset of RFC 7578: the body is split on the literal
// delimiter "--" + boundary and every segment between two delimiters is
// treated as one part. Nested multiparts, boundary look-alikes inside a
// payload, header folding and RFC 2231 encoded filenames (filename*=) are
// not supported. Only the first part that declares a filename is used.
package formdata

import (
	"bytes"
	"file-exchange/domain"
	customErrors "file-exchange/errors"
	"mime"
	"strings"
)

var (
	crlf            = []byte("\r\n")
	headerSeparator = []byte("\r\n\r\n")
	dashes          = []byte("--")
	filenameAttr    = []byte("filename=")
	disposition     = []byte("content-disposition")
)

// Part is one delimiter-bounded segment, split into its raw header block
// and body.
type Part struct {
	Header []byte
	Body   []byte
}

// ExtractBoundary reads the boundary parameter of a Content-Type header.
func ExtractBoundary(contentType string) (string, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", customErrors.ErrMissingBoundary
	}
	boundary := params["boundary"]
	if boundary == "" {
		return "", customErrors.ErrMissingBoundary
	}
	return boundary, nil
}

// SplitParts cuts body on the boundary delimiter. The preamble before the
// first delimiter and the closing "--" epilogue are dropped, as is the CRLF
// pair framing each part, so part bodies keep their exact bytes. Segments
// without a blank line after their headers are not parts and are skipped.
func SplitParts(body []byte, boundary string) []Part {
	delimiter := append(append([]byte{}, dashes...), boundary...)
	segments := bytes.Split(body, delimiter)
	if len(segments) < 2 {
		return nil
	}

	parts := make([]Part, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		if bytes.HasPrefix(segment, dashes) {
			break
		}
		segment = bytes.TrimPrefix(segment, crlf)
		segment = bytes.TrimSuffix(segment, crlf)

		idx := bytes.Index(segment, headerSeparator)
		if idx < 0 {
			continue
		}
		parts = append(parts, Part{
			Header: segment[:idx],
			Body:   segment[idx+len(headerSeparator):],
		})
	}
	return parts
}

// LocateFilePart returns the first part whose headers carry both a
// Content-Disposition and a filename attribute.
func LocateFilePart(parts []Part) (Part, bool) {
	for _, part := range parts {
		if isFilePart(part) {
			return part, true
		}
	}
	return Part{}, false
}

func isFilePart(part Part) bool {
	lower := asciiLower(part.Header)
	return bytes.Contains(lower, disposition) && indexFilenameAttr(lower) >= 0
}

// asciiLower folds only A-Z so offsets stay aligned with the original
// header even when the filename holds multi-byte characters.
func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

// Filename returns the value of the filename attribute. Quoted values run to
// the next quote, unquoted values to the next ';' or line end.
func (p Part) Filename() string {
	idx := indexFilenameAttr(asciiLower(p.Header))
	if idx < 0 {
		return ""
	}
	rest := p.Header[idx+len(filenameAttr):]

	if bytes.HasPrefix(rest, []byte(`"`)) {
		rest = rest[1:]
		end := bytes.IndexByte(rest, '"')
		if end < 0 {
			return ""
		}
		return string(rest[:end])
	}

	end := bytes.IndexAny(rest, ";\r\n")
	if end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(string(rest))
}

// indexFilenameAttr skips matches that are the tail of another attribute,
// such as "xfilename=".
func indexFilenameAttr(lower []byte) int {
	offset := 0
	for {
		idx := bytes.Index(lower[offset:], filenameAttr)
		if idx < 0 {
			return -1
		}
		abs := offset + idx
		if abs == 0 {
			return abs
		}
		switch lower[abs-1] {
		case ' ', ';', '\t':
			return abs
		}
		offset = abs + len(filenameAttr)
	}
}

// Parse runs boundary extraction, part splitting and field location and
// returns the file carried by the request.
func Parse(body []byte, contentType string) (domain.ExtractedFile, error) {
	boundary, err := ExtractBoundary(contentType)
	if err != nil {
		return domain.ExtractedFile{}, err
	}
	return Extract(domain.UploadRequest{Body: body, Boundary: boundary})
}

func Extract(request domain.UploadRequest) (domain.ExtractedFile, error) {
	if request.Boundary == "" {
		return domain.ExtractedFile{}, customErrors.ErrMissingBoundary
	}
	part, ok := LocateFilePart(SplitParts(request.Body, request.Boundary))
	if !ok {
		return domain.ExtractedFile{}, customErrors.ErrNoFileField
	}
	return domain.ExtractedFile{
		Filename: part.Filename(),
		Payload:  part.Body,
	}, nil
}
