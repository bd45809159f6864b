package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"nutrilog/entities"
)

// Document is the whole persisted state: one profile and an append-mostly
// meal collection, stored as a single JSON file.
type Document struct {
	Profile entities.Profile `json:"profile"`
	Meals   []entities.Meal  `json:"meals"`
}

// JSONStore performs a full read-modify-write cycle per operation. A mutex
// serializes cycles within this process; concurrent clients can still
// overwrite each other's writes (last write wins).
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) (*JSONStore, error) {
	s := &JSONStore{path: path}

	// Seed the file with defaults on first run so reads never fail.
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(defaultDocument()); err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
	} else if _, err := s.read(); err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return s, nil
}

// View runs fn against a fresh read of the document.
func (s *JSONStore) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Update runs fn against a fresh read and persists the mutated document
// before returning. If fn fails nothing is written.
func (s *JSONStore) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *JSONStore) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}

	if doc.Meals == nil {
		doc.Meals = []entities.Meal{}
	}
	// The targets invariant holds even for files written before targets
	// existed: never hand out a zero-value Targets.
	if doc.Profile.Targets == (entities.Targets{}) {
		doc.Profile.Targets = entities.DefaultTargets()
	}

	return doc, nil
}

func (s *JSONStore) write(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

func defaultDocument() *Document {
	return &Document{
		Profile: entities.Profile{Targets: entities.DefaultTargets()},
		Meals:   []entities.Meal{},
	}
}
