package pipeline

import (
	"context"
	"log/slog"

	"github.com/nfujimoto/pdfsift/internal/pdfdoc"
	"github.com/nfujimoto/pdfsift/internal/section"
	"github.com/nfujimoto/pdfsift/internal/store"
)

// Worker runs extraction for queued documents.
type Worker struct {
	log    *slog.Logger
	detect section.Config
}

func NewWorker(log *slog.Logger, detect section.Config) *Worker {
	return &Worker{log: log, detect: detect}
}

// Process validates and extracts a single document, storing the results on
// the document itself.
func (w *Worker) Process(ctx context.Context, doc *store.Document) {
	log := w.log.With("doc_id", doc.ID, "filename", doc.Filename)

	if ctx.Err() != nil {
		doc.Fail("extraction canceled")
		return
	}

	doc.SetStatus(store.StatusExtracting)

	if err := pdfdoc.Validate(doc.Path); err != nil {
		log.Error("pdf validation failed", "error", err)
		doc.Fail("validate: " + err.Error())
		return
	}

	extracted, err := pdfdoc.Extract(doc.Path)
	if err != nil {
		log.Error("extraction failed", "error", err)
		doc.Fail("extract: " + err.Error())
		return
	}

	sections := section.DetectWithConfig(extracted.Outline, extracted.PageTexts, w.detect)
	doc.SetResult(extracted, sections)

	log.Info("extraction complete",
		"pages", extracted.PageCount,
		"outline_entries", len(extracted.Outline),
		"sections", len(sections),
	)
}
