package domain

import (
	customErrors "file-exchange/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidationPolicy_NormalizesExtensions(t *testing.T) {
	req := require.New(t)

	policy, err := NewValidationPolicy([]string{"ZIP", ".xz", " .bin ", ".zip", ""}, 10*MB)
	req.NoError(err)
	req.Equal([]string{".zip", ".xz", ".bin"}, policy.AllowedExtensions)
	req.Equal(int64(10*MB), policy.MaxSizeBytes)
	req.Equal(".zip,.xz,.bin", policy.Accept())
}

func TestNewValidationPolicy_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		maxSize    int64
	}{
		{"No extension", nil, MB},
		{"Only blanks", []string{" ", ""}, MB},
		{"Zero size", []string{".zip"}, 0},
		{"Negative size", []string{".zip"}, -1},
		{"Separator in extension", []string{".tar/gz"}, MB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewValidationPolicy(tt.extensions, tt.maxSize)
			require.ErrorIs(t, err, customErrors.ErrInvalidPolicy)
		})
	}
}

func TestValidationPolicy_Allows(t *testing.T) {
	req := require.New(t)
	policy := DefaultValidationPolicy()

	req.True(policy.AllowsExtension(".ZIP"))
	req.True(policy.AllowsExtension(".bin"))
	req.False(policy.AllowsExtension(".exe"))
	req.False(policy.AllowsExtension(""))

	req.True(policy.AllowsSize(0))
	req.True(policy.AllowsSize(80 * MB))
	req.False(policy.AllowsSize(80*MB + 1))
}

func TestExtractedFile_Extension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.bin", ".bin"},
		{"Archive.ZIP", ".zip"},
		{"backup.tar.xz", ".xz"},
		{"README", ""},
		{"trailing.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractedFile{Filename: tt.filename}.Extension())
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     error
	}{
		{"Plain name", "a.bin", nil},
		{"Dots inside name", "v1..2.zip", nil},
		{"Empty", "", customErrors.ErrEmptyFilename},
		{"Blank", "   ", customErrors.ErrEmptyFilename},
		{"Dot", ".", customErrors.ErrUnsafeFilename},
		{"Parent", "..", customErrors.ErrUnsafeFilename},
		{"Parent traversal", "../etc/passwd.bin", customErrors.ErrUnsafeFilename},
		{"Absolute path", "/etc/a.zip", customErrors.ErrUnsafeFilename},
		{"Windows path", `C:\Users\me\a.zip`, customErrors.ErrUnsafeFilename},
		{"Backslash traversal", `..\a.zip`, customErrors.ErrUnsafeFilename},
		{"Drive relative", "C:a.zip", customErrors.ErrUnsafeFilename},
		{"NUL byte", "a\x00.zip", customErrors.ErrUnsafeFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProgressEvent_Percent(t *testing.T) {
	req := require.New(t)

	req.Equal(100.0, ProgressEvent{}.Percent())
	req.True(ProgressEvent{}.Done())
	req.Equal(50.0, ProgressEvent{BytesWritten: 512, TotalBytes: 1024}.Percent())
	req.False(ProgressEvent{BytesWritten: 512, TotalBytes: 1024}.Done())
}

func TestOutcomeKind_String(t *testing.T) {
	req := require.New(t)
	req.Equal("success", OutcomeSuccess.String())
	req.Equal("storage_failure", OutcomeStorageFailure.String())
	req.Equal("unknown", OutcomeKind(42).String())
}
