package domain

import (
	customErrors "file-exchange/errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

var DefaultAllowedExtensions = []string{".zip", ".xz", ".bin"}

const DefaultMaxSizeBytes int64 = 80 * MB

// ValidationPolicy is the immutable pair of rules an upload must satisfy
// before any byte is persisted.
type ValidationPolicy struct {
	AllowedExtensions []string `validate:"required,min=1,dive,required,startswith=.,excludesall=/\\"`
	MaxSizeBytes      int64    `validate:"gt=0"`
}

// NewValidationPolicy normalises the extensions (lowercase, leading dot,
// no duplicates) and validates the result.
func NewValidationPolicy(extensions []string, maxSizeBytes int64) (ValidationPolicy, error) {
	normalized := lo.Uniq(lo.FilterMap(extensions, func(ext string, _ int) (string, bool) {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return "", false
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext, true
	}))

	policy := ValidationPolicy{
		AllowedExtensions: normalized,
		MaxSizeBytes:      maxSizeBytes,
	}
	if err := validate.Struct(policy); err != nil {
		return ValidationPolicy{}, fmt.Errorf("%w: %v", customErrors.ErrInvalidPolicy, err)
	}
	return policy, nil
}

func DefaultValidationPolicy() ValidationPolicy {
	return ValidationPolicy{
		AllowedExtensions: append([]string(nil), DefaultAllowedExtensions...),
		MaxSizeBytes:      DefaultMaxSizeBytes,
	}
}

func (p ValidationPolicy) AllowsExtension(ext string) bool {
	return lo.Contains(p.AllowedExtensions, strings.ToLower(ext))
}

func (p ValidationPolicy) AllowsSize(size int64) bool {
	return size <= p.MaxSizeBytes
}

// Accept renders the extensions as an HTML accept attribute value.
func (p ValidationPolicy) Accept() string {
	return strings.Join(p.AllowedExtensions, ",")
}
