package repositories

import (
	"file-exchange/contract"
	"file-exchange/domain"
	customErrors "file-exchange/errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const (
	filePerm      = 0o640
	stagingPrefix = ".exchange-"
	stagingSuffix = ".partial"
)

// FileRepository keeps the storage root as the single source of truth.
// fs is expected to be rooted at the storage root (see NewStorageRoot),
// every name is validated as a single path element before use. Symbolic
// links inside the root are never followed.
type FileRepository struct {
	fs  afero.Fs
	log *slog.Logger
}

func NewFileRepository(filesystem afero.Fs, log *slog.Logger) *FileRepository {
	return &FileRepository{fs: filesystem, log: log}
}

// NewStorageRoot creates dir when absent and returns a filesystem confined
// to it.
func NewStorageRoot(base afero.Fs, dir string) (afero.Fs, error) {
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", dir, err)
	}
	return afero.NewBasePathFs(base, dir), nil
}

func (r *FileRepository) List() ([]domain.StoredFile, error) {
	entries, err := afero.ReadDir(r.fs, "/")
	if err != nil {
		return nil, fmt.Errorf("%w: listing storage root: %v", customErrors.ErrStorage, err)
	}
	return lo.FilterMap(entries, func(info os.FileInfo, _ int) (domain.StoredFile, bool) {
		if isStaging(info.Name()) || !(info.Mode().IsRegular() || info.IsDir()) {
			return domain.StoredFile{}, false
		}
		return toStoredFile(info), true
	}), nil
}

// Open returns a regular file of the storage root for reading. Missing
// files, directories, symbolic links and unsafe names all surface as
// ErrFileNotFound.
func (r *FileRepository) Open(name string) (io.ReadSeekCloser, domain.StoredFile, error) {
	if err := domain.ValidateFilename(name); err != nil {
		return nil, domain.StoredFile{}, fmt.Errorf("%w: %v", customErrors.ErrFileNotFound, err)
	}
	if isStaging(name) {
		return nil, domain.StoredFile{}, customErrors.ErrFileNotFound
	}

	linfo, err := r.lstat(r.pathOf(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.StoredFile{}, customErrors.ErrFileNotFound
		}
		return nil, domain.StoredFile{}, fmt.Errorf("%w: lstat %s: %v", customErrors.ErrStorage, name, err)
	}
	if !linfo.Mode().IsRegular() {
		r.log.Debug("Refusing non-regular entry", "filename", name, "mode", linfo.Mode().String())
		return nil, domain.StoredFile{}, customErrors.ErrFileNotFound
	}

	f, err := r.fs.Open(r.pathOf(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.StoredFile{}, customErrors.ErrFileNotFound
		}
		return nil, domain.StoredFile{}, fmt.Errorf("%w: opening %s: %v", customErrors.ErrStorage, name, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, domain.StoredFile{}, fmt.Errorf("%w: stat %s: %v", customErrors.ErrStorage, name, err)
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, domain.StoredFile{}, customErrors.ErrFileNotFound
	}
	return f, toStoredFile(info), nil
}

// Create stages the content in an exclusive temporary file of the root. The
// returned file replaces name only on Commit, by rename, so a symbolic link
// planted under name is replaced rather than written through and a failed
// upload leaves the previous version untouched.
func (r *FileRepository) Create(name string) (contract.StagedFile, error) {
	if err := domain.ValidateFilename(name); err != nil {
		return nil, err
	}
	if isStaging(name) {
		return nil, customErrors.ErrUnsafeFilename
	}
	f, err := afero.TempFile(r.fs, "/", stagingPrefix+"*"+stagingSuffix)
	if err != nil {
		return nil, fmt.Errorf("%w: staging %s: %v", customErrors.ErrStorage, name, err)
	}
	r.log.Debug("Destination staged", "filename", name, "staging", f.Name())
	return &stagedFile{repo: r, file: f, staging: f.Name(), target: r.pathOf(name)}, nil
}

func (r *FileRepository) pathOf(name string) string {
	return path.Join("/", name)
}

func (r *FileRepository) lstat(name string) (os.FileInfo, error) {
	if lstater, ok := r.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return r.fs.Stat(name)
}

func isStaging(name string) bool {
	return strings.HasPrefix(name, stagingPrefix) && strings.HasSuffix(name, stagingSuffix)
}

type stagedFile struct {
	repo    *FileRepository
	file    afero.File
	staging string
	target  string
	done    bool
}

func (s *stagedFile) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *stagedFile) Commit() error {
	if s.done {
		return fmt.Errorf("%w: %s already finished", customErrors.ErrStorage, s.target)
	}
	s.done = true
	if err := s.file.Close(); err != nil {
		s.cleanup()
		return fmt.Errorf("%w: closing %s: %v", customErrors.ErrStorage, s.target, err)
	}
	if err := s.repo.fs.Chmod(s.staging, filePerm); err != nil {
		s.cleanup()
		return fmt.Errorf("%w: chmod %s: %v", customErrors.ErrStorage, s.target, err)
	}
	if err := s.repo.fs.Rename(s.staging, s.target); err != nil {
		s.cleanup()
		return fmt.Errorf("%w: publishing %s: %v", customErrors.ErrStorage, s.target, err)
	}
	s.repo.log.Debug("Destination committed", "filename", path.Base(s.target))
	return nil
}

func (s *stagedFile) Discard() error {
	if s.done {
		return nil
	}
	s.done = true
	_ = s.file.Close()
	return s.cleanup()
}

func (s *stagedFile) cleanup() error {
	if err := s.repo.fs.Remove(s.staging); err != nil && !os.IsNotExist(err) {
		s.repo.log.Error("Failed to remove staging file", "staging", s.staging, "error", err)
		return fmt.Errorf("%w: removing %s: %v", customErrors.ErrStorage, s.staging, err)
	}
	return nil
}

func toStoredFile(info os.FileInfo) domain.StoredFile {
	return domain.StoredFile{
		Name:       info.Name(),
		Size:       info.Size(),
		IsDir:      info.IsDir(),
		ModifiedAt: info.ModTime(),
	}
}
