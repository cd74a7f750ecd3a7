package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// collection - один JSON-файл с массивом записей
type collection[T any] struct {
	path string
}

func newCollection[T any](dir, name string) collection[T] {
	return collection[T]{path: filepath.Join(dir, name)}
}

// load читает файл целиком; отсутствующий или пустой файл означает пустую коллекцию
func (c collection[T]) load() ([]*T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make([]*T, 0), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}

	items := make([]*T, 0)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", c.path, err)
	}

	return items, nil
}

// save пишет во временный файл и переименовывает его поверх старого
func (c collection[T]) save(items []*T) error {
	if items == nil {
		items = make([]*T, 0)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), c.path)
}
