package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datefield/pkg/model"
)

// MustLoadDialog loads a JSON dialog golden file. It does not sanitise or
// check the definition, so goldens describe exactly what a loader produced.
func MustLoadDialog(t *testing.T, path string) model.Dialog {
	t.Helper()

	d, err := LoadDialog(path)
	if err != nil {
		t.Fatalf("load dialog: %v", err)
	}
	return d
}

// LoadDialog reads a JSON dialog fixture, returning an error for callers
// managing setup outside of *testing.T.
func LoadDialog(path string) (model.Dialog, error) {
	if path == "" {
		return model.Dialog{}, errors.New("testsupport: dialog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Dialog{}, fmt.Errorf("testsupport: read dialog: %w", err)
	}
	var out model.Dialog
	if err := json.Unmarshal(data, &out); err != nil {
		return model.Dialog{}, fmt.Errorf("testsupport: unmarshal dialog: %w", err)
	}
	return out, nil
}

// MustReadFixture returns the raw bytes of a fixture file.
func MustReadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Clock returns a time source frozen at t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
