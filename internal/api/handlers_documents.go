package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nfujimoto/pdfsift/internal/store"
)

// handleUpload accepts a multipart PDF upload, stores it on disk and queues
// it for extraction.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		jsonError(w, fmt.Sprintf("unsupported file type: %s (only .pdf)", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		jsonError(w, "failed to prepare upload dir", http.StatusInternalServerError)
		return
	}

	doc := store.NewDocument(filename, "")
	path := filepath.Join(s.cfg.UploadDir, doc.ID+".pdf")

	dst, err := os.Create(path)
	if err != nil {
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	written, err := io.Copy(dst, io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	dst.Close()
	if err != nil {
		os.Remove(path)
		jsonError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	if written > s.cfg.MaxUploadBytes {
		os.Remove(path)
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}
	doc.Path = path

	if err := s.orchestrator.Submit(doc); err != nil {
		os.Remove(path)
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   doc.ID,
		"filename": doc.Filename,
		"status":   doc.Snapshot().Status,
		"poll_url": fmt.Sprintf("/api/documents/%s", doc.ID),
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.orchestrator.Documents()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

func (s *Server) handleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	doc := s.orchestrator.GetDocument(chi.URLParam(r, "docID"))
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	snap := doc.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":     snap.ID,
		"filename":   snap.Filename,
		"status":     snap.Status,
		"error":      snap.Err,
		"page_count": snap.PageCount,
		"created_at": snap.CreatedAt,
	})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.orchestrator.DeleteDocument(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

// readyDocument fetches a document and answers the request itself when the
// document is missing or extraction has not finished.
func (s *Server) readyDocument(w http.ResponseWriter, docID string) (store.Snapshot, bool) {
	doc := s.orchestrator.GetDocument(docID)
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return store.Snapshot{}, false
	}
	snap := doc.Snapshot()
	switch snap.Status {
	case store.StatusReady:
		return snap, true
	case store.StatusFailed:
		jsonError(w, "extraction failed: "+snap.Err, http.StatusConflict)
	default:
		jsonError(w, fmt.Sprintf("document not ready (status %s)", snap.Status), http.StatusConflict)
	}
	return store.Snapshot{}, false
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
