// Package store holds uploaded documents and their extraction results in
// memory for the lifetime of the process.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/nfujimoto/pdfsift/internal/pdfdoc"
	"github.com/nfujimoto/pdfsift/internal/section"
)

// Status represents the state of a document's extraction.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusExtracting Status = "extracting"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
)

// Document tracks one uploaded PDF through extraction.
type Document struct {
	mu sync.Mutex

	ID       string
	Filename string
	Path     string // stored upload on disk

	Status Status
	Err    string

	PageCount int
	PageTexts []string
	Outline   []section.OutlineEntry
	Sections  []section.Section
	Meta      pdfdoc.Metadata

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDocument registers a fresh upload in the queued state.
func NewDocument(filename, path string) *Document {
	now := time.Now()
	return &Document{
		ID:        NewID(),
		Filename:  filename,
		Path:      path,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetStatus updates the document status atomically.
func (d *Document) SetStatus(status Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Status = status
	d.UpdatedAt = time.Now()
}

// Fail marks the document failed with a reason.
func (d *Document) Fail(reason string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Status = StatusFailed
	d.Err = reason
	d.UpdatedAt = time.Now()
}

// SetResult stores extraction output and marks the document ready.
func (d *Document) SetResult(extracted *pdfdoc.Document, sections []section.Section) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.PageCount = extracted.PageCount
	d.PageTexts = extracted.PageTexts
	d.Outline = extracted.Outline
	d.Sections = sections
	d.Meta = extracted.Meta
	d.Status = StatusReady
	d.Err = ""
	d.UpdatedAt = time.Now()
}

// PageText returns the text of a 1-based page number.
func (d *Document) PageText(page int) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if page < 1 || page > len(d.PageTexts) {
		return "", false
	}
	return d.PageTexts[page-1], true
}

// Snapshot is a read-only, JSON-safe copy of document state. Extraction
// results are shared slices; callers must not mutate them.
type Snapshot struct {
	ID        string            `json:"doc_id"`
	Filename  string            `json:"filename"`
	Status    Status            `json:"status"`
	Err       string            `json:"error,omitempty"`
	PageCount int               `json:"page_count"`
	Sections  []section.Section `json:"sections,omitempty"`
	Meta      pdfdoc.Metadata   `json:"metadata"`
	Path      string            `json:"-"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Snapshot returns a copy of the document state.
func (d *Document) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		ID:        d.ID,
		Filename:  d.Filename,
		Status:    d.Status,
		Err:       d.Err,
		PageCount: d.PageCount,
		Sections:  d.Sections,
		Meta:      d.Meta,
		Path:      d.Path,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// DocumentStore is a thread-safe in-memory document registry with TTL
// eviction.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration
}

func NewDocumentStore(ttl time.Duration) *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]*Document),
		ttl:  ttl,
	}
}

func (s *DocumentStore) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

func (s *DocumentStore) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id]
}

// Delete removes a document and returns it, or nil if absent.
func (s *DocumentStore) Delete(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.docs[id]
	delete(s.docs, id)
	return doc
}

// List returns snapshots of all documents, newest first.
func (s *DocumentStore) List() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Snapshot, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Cleanup removes expired documents and returns them so the caller can
// delete stored files.
func (s *DocumentStore) Cleanup() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var removed []*Document
	for id, doc := range s.docs {
		if now.Sub(doc.UpdatedAt) > s.ttl {
			removed = append(removed, doc)
			delete(s.docs, id)
		}
	}
	return removed
}
