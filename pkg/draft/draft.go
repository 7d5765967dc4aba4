// Package draft keeps in-progress dialog values on disk so an interrupted
// session can resume where it stopped.
package draft

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/goliatone/go-datefield/pkg/model"
)

var ErrNoCallbackID = errors.New("draft: callback id is required")

const draftDir = "drafts"

// Draft is the saved state of one dialog.
type Draft struct {
	CallbackID string            `json:"callback_id"`
	Values     model.Values      `json:"values"`
	Errors     map[string]string `json:"errors,omitempty"`
	Saved      time.Time         `json:"saved"`
}

// Store persists drafts keyed by callback id.
type Store struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

// Open returns a store rooted at basePath. A leading "~" is expanded.
func Open(basePath string) (*Store, error) {
	expanded, err := homedir.Expand(basePath)
	if err != nil {
		return nil, fmt.Errorf("draft: expand %s: %w", basePath, err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          expanded,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      256 * 1024,
		}),
		basePath: expanded,
		now:      time.Now,
	}, nil
}

// BasePath returns the expanded directory the store writes to.
func (s *Store) BasePath() string { return s.basePath }

// Save writes d, stamping it with the current time.
func (s *Store) Save(d Draft) error {
	if d.CallbackID == "" {
		return ErrNoCallbackID
	}
	d.Saved = s.now().UTC()
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("draft: encode %s: %w", d.CallbackID, err)
	}
	return s.d.Write(toKey(d.CallbackID), data)
}

// Load returns the draft for callbackID. Missing drafts report false with a
// nil error.
func (s *Store) Load(callbackID string) (Draft, bool, error) {
	key := toKey(callbackID)
	if !s.d.Has(key) {
		return Draft{}, false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Draft{}, false, nil
		}
		return Draft{}, false, fmt.Errorf("draft: read %s: %w", callbackID, err)
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, false, fmt.Errorf("draft: decode %s: %w", callbackID, err)
	}
	return d, true, nil
}

// Delete removes the draft for callbackID. Deleting a missing draft is not
// an error.
func (s *Store) Delete(callbackID string) error {
	key := toKey(callbackID)
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}

// List returns the callback ids with a saved draft, sorted.
func (s *Store) List(ctx context.Context) []string {
	ids := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if id, ok := fromKey(key); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Callback ids may hold any character, so file names are hex encoded.
func toKey(callbackID string) string {
	return hex.EncodeToString([]byte(callbackID))
}

func fromKey(key string) (string, bool) {
	raw, err := hex.DecodeString(key)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{draftDir},
		FileName: key + ".json",
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	name := pathKey.FileName
	if len(name) > len(".json") {
		name = name[:len(name)-len(".json")]
	}
	return name
}
