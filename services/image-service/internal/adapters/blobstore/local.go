package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore хранит файлы в каталоге на диске и отдает их по PublicPrefix
type LocalStore struct {
	dir          string
	publicPrefix string
}

func NewLocalStore(dir, publicPrefix string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("local blob store: directory cannot be empty")
	}
	if err := os.MkdirAll(filepath.Join(dir, "thumbnails"), 0o755); err != nil {
		return nil, fmt.Errorf("local blob store: failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:          dir,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
	}, nil
}

// resolve не пускает имена за пределы каталога
func (s *LocalStore) resolve(name string) (string, error) {
	clean := path.Clean("/" + name)
	if clean == "/" || strings.Contains(name, "..") {
		return "", fmt.Errorf("local blob store: invalid object name %q", name)
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}

// Put пишет во временный файл и переименовывает, чтобы не отдавать недописанные файлы
func (s *LocalStore) Put(_ context.Context, name, _ string, content io.Reader, _ int64) error {
	target, err := s.resolve(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return fmt.Errorf("local blob store: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("local blob store: failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("local blob store: failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("local blob store: failed to move %s into place: %w", name, err)
	}
	return nil
}

// Delete отсутствующий файл ошибкой не считается
func (s *LocalStore) Delete(_ context.Context, name string) error {
	target, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("local blob store: failed to delete %s: %w", name, err)
	}
	return nil
}

func (s *LocalStore) URL(name string) string {
	return s.publicPrefix + "/" + name
}

// PublicPrefix путь, под которым Handler отдает файлы
func (s *LocalStore) PublicPrefix() string {
	return s.publicPrefix
}

// Handler отдает загруженные файлы, без листинга каталогов
func (s *LocalStore) Handler() http.Handler {
	fileServer := http.FileServer(http.Dir(s.dir))
	return http.StripPrefix(s.publicPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	}))
}
