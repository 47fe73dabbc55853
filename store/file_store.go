package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists one JSON file per entity collection under a data
// directory. Writes go to a temp file in the same directory followed by a
// rename, so a crash mid-write never leaves a partial file visible.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

const (
	customersFile    = "customers.json"
	reservationsFile = "reservations.json"
	tablesFile       = "tables.json"
	menuFile         = "menu.json"
	ordersFile       = "orders.json"
	billsFile        = "bills.json"
)

func (fs *FileStore) Load() (*Snapshot, error) {
	s := NewSnapshot()

	if err := readCollection(fs.dir, customersFile, &s.Customers); err != nil {
		return nil, err
	}
	if err := readCollection(fs.dir, reservationsFile, &s.Reservations); err != nil {
		return nil, err
	}
	if err := readCollection(fs.dir, tablesFile, &s.Tables); err != nil {
		return nil, err
	}
	if err := readCollection(fs.dir, menuFile, &s.Menu); err != nil {
		return nil, err
	}
	if err := readCollection(fs.dir, ordersFile, &s.Orders); err != nil {
		return nil, err
	}
	if err := readCollection(fs.dir, billsFile, &s.Bills); err != nil {
		return nil, err
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (fs *FileStore) Persist(s *Snapshot) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := writeCollection(fs.dir, customersFile, s.Customers); err != nil {
		return err
	}
	if err := writeCollection(fs.dir, reservationsFile, s.Reservations); err != nil {
		return err
	}
	if err := writeCollection(fs.dir, tablesFile, s.Tables); err != nil {
		return err
	}
	if err := writeCollection(fs.dir, menuFile, s.Menu); err != nil {
		return err
	}
	if err := writeCollection(fs.dir, ordersFile, s.Orders); err != nil {
		return err
	}
	if err := writeCollection(fs.dir, billsFile, s.Bills); err != nil {
		return err
	}
	return nil
}

// readCollection fills dst from dir/name. A missing file is a fresh
// install, not an error; anything unreadable or unparsable is corruption.
func readCollection[T any](dir, name string, dst *map[string]T) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return corrupt("%s: %v", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return corrupt("%s: %v", name, err)
	}
	return nil
}

func writeCollection[T any](dir, name string, src map[string]T) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
