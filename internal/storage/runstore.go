package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"livespiff/internal/core/model"
)

// ErrorKind classifies a run store failure so callers can branch on
// the failure kind rather than the message text.
type ErrorKind int

const (
	// KindIO covers unreadable or unwritable files and uncreatable
	// directories.
	KindIO ErrorKind = iota
	// KindParse covers malformed JSON, including a root that is not an
	// object.
	KindParse
)

// StoreError is the failure type for run load/save operations.
type StoreError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (storeErr *StoreError) Error() string {
	if storeErr.Err != nil {
		return fmt.Sprintf("%s: %v", storeErr.Msg, storeErr.Err)
	}
	return storeErr.Msg
}

func (storeErr *StoreError) Unwrap() error {
	return storeErr.Err
}

func ioError(msg string, err error) *StoreError {
	return &StoreError{Kind: KindIO, Msg: msg, Err: err}
}

func parseError(msg string, err error) *StoreError {
	return &StoreError{Kind: KindParse, Msg: msg, Err: err}
}

// runDocument is the persisted JSON shape. Unknown top-level fields in
// a loaded document are ignored.
type runDocument struct {
	Game     string   `json:"game"`
	Category string   `json:"category"`
	Segments []string `json:"segments"`
}

// LoadRun reads and parses the run document at path. On success the
// returned run is fully populated: missing game/category are filled
// from defaults and segments is guaranteed non-empty. A failed load
// builds nothing, so the caller's active run stays untouched.
func LoadRun(path string) (*model.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(fmt.Sprintf("read run file %q", path), err)
	}

	// A bare "null" decodes into a nil map without error; the root
	// must be an object.
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, parseError(fmt.Sprintf("parse run file %q", path), err)
	}
	if root == nil {
		return nil, parseError(fmt.Sprintf("invalid run file %q: root is not an object", path), nil)
	}

	var doc runDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, parseError(fmt.Sprintf("parse run file %q", path), err)
	}

	run := &model.Run{
		Game:     doc.Game,
		Category: doc.Category,
		Segments: doc.Segments,
	}
	run.Normalize()
	return run, nil
}

// SaveRun serializes run to pretty-printed JSON at path, creating
// parent directories as needed.
func SaveRun(path string, run *model.Run) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ioError(fmt.Sprintf("create directory %q", dir), err)
	}

	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return ioError(fmt.Sprintf("write run file %q", path), err)
	}
	return nil
}

// RunJSON serializes run to a pretty-printed JSON string without
// touching storage.
func RunJSON(run *model.Run) (string, error) {
	data, err := encodeRun(run)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func encodeRun(run *model.Run) ([]byte, error) {
	doc := runDocument{
		Game:     run.Game,
		Category: run.Category,
		Segments: run.Segments,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, parseError("encode run document", err)
	}
	return data, nil
}
