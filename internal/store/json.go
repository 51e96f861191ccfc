package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jyang234/taskpro/internal/model"
)

// JSON is a file-backed store holding the document as a single JSON file.
type JSON struct {
	path string
}

// NewJSON creates a JSON store at the given file path. The file is not
// created until the first Save.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Path returns the backing file path.
func (s *JSON) Path() string {
	return s.path
}

// Load reads the document from disk. A missing file yields an empty
// document.
func (s *JSON) Load() (*model.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	return doc, nil
}

// Save writes the full document, replacing any prior content. The write
// goes through a temp file and rename so a crash mid-write leaves the old
// store intact.
func (s *JSON) Save(doc *model.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store: %w", err)
	}

	return nil
}
