package dialog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datefield/pkg/model"
)

// Load parses a JSON or YAML dialog definition, sanitises it and checks its
// structure. source names the input in error messages.
func Load(data []byte, source string) (model.Dialog, error) {
	d, err := parseDocument(data, source)
	if err != nil {
		return model.Dialog{}, err
	}
	d = Sanitize(d)
	if err := Check(d); err != nil {
		return model.Dialog{}, fmt.Errorf("dialog: %s: %w", source, err)
	}
	return d, nil
}

func parseDocument(data []byte, source string) (model.Dialog, error) {
	var d model.Dialog
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.Dialog{}, fmt.Errorf("dialog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &d); err == nil {
		return d, nil
	}

	d = model.Dialog{}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return model.Dialog{}, fmt.Errorf("dialog: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return d, nil
}

// Store holds dialogs keyed by callback id.
type Store struct {
	dialogs map[string]model.Dialog
	sources map[string]string
}

// LoadFS walks fsys and loads every .json, .yaml and .yml file as a dialog.
// A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		dialogs: make(map[string]model.Dialog),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDialogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("dialog: read %s: %w", path, err)
		}
		d, err := Load(data, path)
		if err != nil {
			return err
		}

		id := strings.TrimSpace(d.CallbackID)
		if id == "" {
			id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			d.CallbackID = id
		}
		if prev, exists := store.sources[id]; exists {
			return fmt.Errorf("dialog: duplicate callback id %q (files %s and %s)", id, prev, path)
		}
		store.dialogs[id] = d
		store.sources[id] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func isDialogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Dialog returns the dialog registered under callbackID.
func (s *Store) Dialog(callbackID string) (model.Dialog, bool) {
	if s == nil {
		return model.Dialog{}, false
	}
	d, ok := s.dialogs[callbackID]
	return d, ok
}

// IDs returns the callback ids in the store, sorted.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.dialogs))
	for id := range s.dialogs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Source returns the file a dialog was loaded from.
func (s *Store) Source(callbackID string) string {
	if s == nil {
		return ""
	}
	return s.sources[callbackID]
}
