package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Zip", "application/zip", ApplicationZip, true},
		{"XZ", "application/x-xz", ApplicationXZ, true},
		{"With parameters", "application/zip; charset=binary", ApplicationZip, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationZip, false},
		{"Octet stream is not xz", "application/octet-stream", ApplicationXZ, false},
		{"Invalid MIME", "not a mime", ApplicationZip, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestConsistentWith(t *testing.T) {
	req := require.New(t)
	req.True(ConsistentWith(".zip", "application/zip"))
	req.False(ConsistentWith(".zip", "text/plain; charset=utf-8"))
	req.True(ConsistentWith(".xz", "application/x-xz"))
	req.True(ConsistentWith(".bin", "text/plain; charset=utf-8"))
	req.True(ConsistentWith(".bin", "application/octet-stream"))
}
