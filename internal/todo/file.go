package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Save writes the whole list to a new snapshot file at path.
// It never overwrites: an existing path fails with ErrFileExists.
func (l *List) Save(path string) error {
	tasks := l.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal tasks: %w", ErrEncode, err)
	}

	// Add trailing newline
	data = append(data, '\n')

	// O_EXCL makes the existence check and the create a single step
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("save %q: %w", path, ErrFileExists)
		}
		return fmt.Errorf("%w: create snapshot file: %w", ErrIO, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("%w: write snapshot file: %w", ErrIO, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: close snapshot file: %w", ErrIO, err)
	}

	return nil
}

// Load replaces the contents of the list with the tasks in the snapshot
// file at path. The list is left untouched on error.
func (l *List) Load(path string) error {
	tasks, err := ReadFile(path)
	if err != nil {
		return err
	}
	l.Replace(tasks)
	return nil
}

// ReadFile reads, validates, and decodes the snapshot file at path.
func ReadFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %q: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("%w: read snapshot file: %w", ErrIO, err)
	}
	return Decode(data)
}

// Decode validates snapshot content against the snapshot schema and
// decodes it.
func Decode(data []byte) ([]Task, error) {
	if err := validateSnapshot(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: parse snapshot: %w", ErrDecode, err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
