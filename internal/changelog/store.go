package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store persists the pending-change document as a single JSON file.
// Every mutation is a whole-file overwrite: callers load the document,
// mutate it in memory and save it back. The store holds no state
// between calls beyond the file path and project name.
type Store struct {
	path    string
	project string
}

// NewStore returns a store backed by the given unreleased.json path.
func NewStore(path, project string) *Store {
	return &Store{path: path, project: project}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the pending document. A missing or corrupt backing file is
// replaced with a fresh empty document before returning (self-healing
// read): corruption is never surfaced as a fatal error.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.Reset()
		}
		return nil, fmt.Errorf("reading pending changes: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s.Reset()
	}
	if doc.Changes == nil {
		return s.Reset()
	}
	return &doc, nil
}

// Save writes the document back, refreshing last_modified.
func (s *Store) Save(doc *Document) error {
	doc.LastModified = time.Now()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pending changes: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating pending changes directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing pending changes: %w", err)
	}
	return nil
}

// Reset replaces the pending store with an empty document and persists
// it. Used at init time and after a successful release.
func (s *Store) Reset() (*Document, error) {
	doc := NewDocument(s.project)
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Add validates the category, constructs an entry with a fresh unique
// id and appends it to the document. The caller is responsible for
// saving the document afterwards.
func (d *Document) Add(category Category, description, author string) (Entry, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:          newEntryID(time.Now()),
		Description: description,
		Timestamp:   time.Now(),
		Author:      author,
		Status:      "pending",
	}

	if d.Changes == nil {
		d.Changes = make(map[Category][]Entry)
	}
	d.Changes[category] = append(d.Changes[category], entry)
	d.Recount()
	return entry, nil
}

var (
	idMu      sync.Mutex
	lastStamp int64
)

// newEntryID generates a unique id from a nanosecond timestamp. A
// process-local guard keeps ids strictly increasing even when two adds
// land on the same clock reading.
func newEntryID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ns := now.UnixNano()
	if ns <= lastStamp {
		ns = lastStamp + 1
	}
	lastStamp = ns

	t := time.Unix(0, ns)
	return fmt.Sprintf("chg_%s%09d", t.Format("20060102150405"), t.Nanosecond())
}
