package internal

import (
	"file-exchange/domain"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	StorageRoot       string        `env:"STORAGE_ROOT"`
	MaxFileSizeBytes  int64         `env:"MAX_FILE_SIZE_BYTES,default=83886080" validate:"gt=0"`
	AllowedExtensions string        `env:"ALLOWED_EXTENSIONS"`
	Host              string        `env:"HOST"`
	Port              int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	ChunkSize         int           `env:"CHUNK_SIZE,default=1024" validate:"gt=0"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	JournalPath       string        `env:"JOURNAL_PATH"`
	OpsPort           int           `env:"OPS_PORT,default=9090" validate:"min=0,max=65535,nefield=Port"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	ConsoleProgress   bool          `env:"CONSOLE_PROGRESS,default=true"`
	EnvelopeOverhead  int64         `env:"ENVELOPE_OVERHEAD_BYTES,default=65536" validate:"gte=0"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Extensions splits ALLOWED_EXTENSIONS on commas. An unset variable yields
// the default set.
func (c Config) Extensions() []string {
	if strings.TrimSpace(c.AllowedExtensions) == "" {
		return domain.DefaultAllowedExtensions
	}
	return strings.Split(c.AllowedExtensions, ",")
}

func (c Config) Policy() (domain.ValidationPolicy, error) {
	return domain.NewValidationPolicy(c.Extensions(), c.MaxFileSizeBytes)
}

// EffectiveStorageRoot falls back to the system temp directory.
func (c Config) EffectiveStorageRoot() string {
	if strings.TrimSpace(c.StorageRoot) == "" {
		return os.TempDir()
	}
	return c.StorageRoot
}

// BodyLimit is the largest request body accepted before the multipart
// envelope is even parsed.
func (c Config) BodyLimit() int64 {
	return c.MaxFileSizeBytes + c.EnvelopeOverhead
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// OpsAddress returns an empty string when the ops listener is disabled.
func (c Config) OpsAddress() string {
	if c.OpsPort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Host, c.OpsPort)
}
