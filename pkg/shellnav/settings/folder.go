package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/BrandonKowalski/shellnav/pkg/shellnav/constants"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/errdefs"
	"github.com/BrandonKowalski/shellnav/pkg/shellnav/internal"
)

// Folder is a directory holding application data files.
type Folder struct {
	path string
}

// NewFolder returns a Folder rooted at path, creating the directory if needed.
func NewFolder(path string) (*Folder, error) {
	if path == "" {
		return nil, errdefs.NewArgumentError("path")
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", path, err)
	}
	return &Folder{path: path}, nil
}

// Path returns the directory of the folder.
func (f *Folder) Path() string {
	return f.path
}

// SaveFile writes content to fileName inside the folder, replacing any existing
// file, and returns the full path of the written file.
func (f *Folder) SaveFile(ctx context.Context, content []byte, fileName string) (string, error) {
	if f == nil {
		return "", errdefs.NewArgumentError("folder")
	}
	if content == nil {
		return "", errdefs.NewArgumentError("content")
	}
	if fileName == "" {
		return "", errdefs.NewArgumentErrorMsg("fileName",
			internal.Localize("ExceptionSettingsStorageExtensionsFileNameIsNullOrEmpty"))
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(f.path, fileName)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("save file %s: %w", fileName, err)
	}
	return path, nil
}

// ReadFile returns the content of fileName, or nil when no such regular file
// exists in the folder.
func (f *Folder) ReadFile(ctx context.Context, fileName string) ([]byte, error) {
	if f == nil {
		return nil, errdefs.NewArgumentError("folder")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(f.path, fileName)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileName, err)
	}
	return content, nil
}

// Store writes content as JSON to <name>.json inside the folder.
func Store[T any](ctx context.Context, f *Folder, name string, content T) error {
	if f == nil {
		return errdefs.NewArgumentError("folder")
	}

	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	_, err = f.SaveFile(ctx, data, jsonFileName(name))
	return err
}

// Load reads <name>.json from the folder, or returns the zero value of T when
// the file does not exist.
func Load[T any](ctx context.Context, f *Folder, name string) (T, error) {
	var content T
	if f == nil {
		return content, errdefs.NewArgumentError("folder")
	}

	data, err := f.ReadFile(ctx, jsonFileName(name))
	if err != nil || data == nil {
		return content, err
	}
	if err := json.Unmarshal(data, &content); err != nil {
		return content, fmt.Errorf("decode %s: %w", name, err)
	}
	return content, nil
}

func jsonFileName(name string) string {
	return name + constants.JSONFileExtension
}
