package repository

import (
	"auction-client/internal/biddingerrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileRepo keeps all slots in one JSON file so that a write replaces every slot at once
type FileRepo struct {
	mu   sync.RWMutex
	path string
}

// NewFileRepo creates a file-backed repository; the file is created on first write
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

// Get returns the value stored under key
func (r *FileRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots, err := r.read()
	if err != nil {
		return "", fmt.Errorf("get slot %s: %w", key, err)
	}
	v, ok := slots[key]
	if !ok {
		return "", fmt.Errorf("get slot %s: %w", key, biddingerrors.ErrSlotEmpty)
	}
	return v, nil
}

// SetAll merges values into the file. An undecodable file is replaced.
func (r *FileRepo) SetAll(_ context.Context, values map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots, err := r.read()
	if errors.Is(err, biddingerrors.ErrSlotUnreadable) {
		slots = map[string]string{}
	} else if err != nil {
		return fmt.Errorf("set slots: %w", err)
	}
	for k, v := range values {
		if k == "" {
			return fmt.Errorf("set slots: empty key")
		}
		slots[k] = v
	}
	if err := r.write(slots); err != nil {
		return fmt.Errorf("set slots: %w", err)
	}
	return nil
}

// Delete removes keys and deletes the file once it holds no slots.
// An undecodable file is removed outright.
func (r *FileRepo) Delete(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots, err := r.read()
	if errors.Is(err, biddingerrors.ErrSlotUnreadable) {
		slots = map[string]string{}
	} else if err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}
	for _, k := range keys {
		delete(slots, k)
	}
	if len(slots) == 0 {
		if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("delete slots: %w", err)
		}
		return nil
	}
	if err := r.write(slots); err != nil {
		return fmt.Errorf("delete slots: %w", err)
	}
	return nil
}

func (r *FileRepo) read() (map[string]string, error) {
	slots := make(map[string]string)
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return slots, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("%w - decode %s: %v", biddingerrors.ErrSlotUnreadable, r.path, err)
	}
	return slots, nil
}

// write replaces the file through a rename so readers never see a half-written file
func (r *FileRepo) write(slots map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".session-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
