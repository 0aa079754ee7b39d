package errors

import "fmt"

var (
	ErrMissingBoundary = fmt.Errorf("content-type has no multipart boundary")
	ErrNoFileField     = fmt.Errorf("no part carries a filename attribute")
	ErrEmptyFilename   = fmt.Errorf("filename is empty")
	ErrUnsafeFilename  = fmt.Errorf("filename escapes the storage root")
	ErrFileNotFound    = fmt.Errorf("file not found")
	ErrStorage         = fmt.Errorf("storage failure")
	ErrInvalidPolicy   = fmt.Errorf("invalid validation policy")
)
