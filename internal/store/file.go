package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"employee-directory/internal/models"
)

// FileMirror keeps the employee list as a JSON array in a single file.
type FileMirror struct {
	path string
}

func NewFileMirror(path string) *FileMirror {
	return &FileMirror{path: path}
}

func (m *FileMirror) Path() string { return m.path }

// Ensure creates the parent directory and an empty array file if missing.
func (m *FileMirror) Ensure(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(m.path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", m.path, err)
		}
	} else if err != nil {
		return fmt.Errorf("stat %s: %w", m.path, err)
	}
	return nil
}

func (m *FileMirror) Load(ctx context.Context) ([]models.Employee, error) {
	b, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", m.path, err)
	}
	var employees []models.Employee
	if err := json.Unmarshal(b, &employees); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.path, err)
	}
	return employees, nil
}

// Save rewrites the whole file through a temp file and rename, so readers
// never observe a partial array.
func (m *FileMirror) Save(ctx context.Context, employees []models.Employee) error {
	if employees == nil {
		employees = []models.Employee{}
	}
	b, err := json.MarshalIndent(employees, "", "  ")
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}
	dir := filepath.Dir(m.path)
	tmp, err := os.CreateTemp(dir, ".employees-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		return fmt.Errorf("replace %s: %w", m.path, err)
	}
	return nil
}
