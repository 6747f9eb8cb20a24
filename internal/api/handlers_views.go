package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nfujimoto/pdfsift/internal/export"
	"github.com/nfujimoto/pdfsift/internal/report"
	"github.com/nfujimoto/pdfsift/internal/section"
	"github.com/nfujimoto/pdfsift/internal/textfilter"
)

// handleMetadata returns the document information fields.
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readyDocument(w, chi.URLParam(r, "docID"))
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"metadata": snap.Meta})
}

// handleSections returns detected sections as JSON (default) or as the
// indented text listing (?format=text).
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readyDocument(w, chi.URLParam(r, "docID"))
	if !ok {
		return
	}

	switch r.URL.Query().Get("format") {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, section.FormatText(snap.Sections))
	case "", "json":
		sections := snap.Sections
		if sections == nil {
			sections = []section.Section{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"sections": sections})
	default:
		jsonError(w, "unknown format (want text or json)", http.StatusBadRequest)
	}
}

// handleSectionReport renders metadata and sections as an HTML fragment.
func (s *Server) handleSectionReport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readyDocument(w, chi.URLParam(r, "docID"))
	if !ok {
		return
	}
	html, err := report.HTML(snap.Meta, snap.Sections)
	if err != nil {
		jsonError(w, "failed to render report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

// handlePageText returns the text of one page, optionally with lines
// matching the repeatable ?exclude= patterns removed.
//
// Filtering is fail-open: an invalid pattern disables the whole set and the
// text comes back unfiltered, with filter_applied=false so clients can tell.
func (s *Server) handlePageText(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	doc := s.orchestrator.GetDocument(docID)
	if doc == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	snap, ok := s.readyDocument(w, docID)
	if !ok {
		return
	}

	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil || page < 1 || page > snap.PageCount {
		jsonError(w, fmt.Sprintf("page must be between 1 and %d", snap.PageCount), http.StatusBadRequest)
		return
	}

	text, ok := doc.PageText(page)
	if !ok {
		jsonError(w, "page text unavailable", http.StatusNotFound)
		return
	}

	patterns := r.URL.Query()["exclude"]
	filtered, applied := textfilter.Apply(text, patterns)

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, filtered)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"page":           page,
		"text":           filtered,
		"filter_applied": applied,
	})
}

// handleExport streams a zip of single-page PDF extracts.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.readyDocument(w, chi.URLParam(r, "docID"))
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="pdfsift-%s-pages.zip"`, snap.ID))

	if err := export.PageBundle(w, snap.Path, snap.PageCount); err != nil {
		// Headers are already out; all we can do is log.
		s.log.Error("page export failed", "doc_id", snap.ID, "error", err)
	}
}
