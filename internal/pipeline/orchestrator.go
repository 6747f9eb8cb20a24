package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/nfujimoto/pdfsift/internal/config"
	"github.com/nfujimoto/pdfsift/internal/section"
	"github.com/nfujimoto/pdfsift/internal/store"
)

// Orchestrator owns the extraction queue and the document registry.
type Orchestrator struct {
	docs   *store.DocumentStore
	queue  chan *store.Document
	log    *slog.Logger
	cfg    config.Config
	detect section.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline around an empty document store.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	detect := section.DefaultConfig()
	if len(cfg.SectionKeywords) > 0 {
		detect.Keywords = cfg.SectionKeywords
	}
	if cfg.SectionHeadLines > 0 {
		detect.HeadLines = cfg.SectionHeadLines
	}
	if cfg.SectionMaxTitleLen > 0 {
		detect.MaxTitleLen = cfg.SectionMaxTitleLen
	}

	return &Orchestrator{
		docs:   store.NewDocumentStore(cfg.DocumentTTL),
		queue:  make(chan *store.Document, cfg.MaxQueueSize),
		log:    log,
		cfg:    cfg,
		detect: detect,
	}
}

// Start launches worker goroutines and the retention sweeper.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.log, o.detect)
			for {
				select {
				case <-workerCtx.Done():
					return
				case doc, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, doc)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.evictExpired()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit registers a document and queues it for extraction.
func (o *Orchestrator) Submit(doc *store.Document) error {
	o.docs.Put(doc)
	select {
	case o.queue <- doc:
		return nil
	default:
		doc.Fail("extraction queue is full")
		return fmt.Errorf("extraction queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetDocument returns a document by ID, or nil.
func (o *Orchestrator) GetDocument(id string) *store.Document {
	return o.docs.Get(id)
}

// Documents lists snapshots of all known documents, newest first.
func (o *Orchestrator) Documents() []store.Snapshot {
	return o.docs.List()
}

// DeleteDocument removes a document and its stored upload file.
func (o *Orchestrator) DeleteDocument(id string) bool {
	doc := o.docs.Delete(id)
	if doc == nil {
		return false
	}
	snap := doc.Snapshot()
	if snap.Path != "" {
		if err := os.Remove(snap.Path); err != nil && !os.IsNotExist(err) {
			o.log.Warn("failed to remove upload", "doc_id", id, "error", err)
		}
	}
	return true
}

// Store exposes the document registry; used by tests and the API layer.
func (o *Orchestrator) Store() *store.DocumentStore {
	return o.docs
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

func (o *Orchestrator) evictExpired() {
	for _, doc := range o.docs.Cleanup() {
		snap := doc.Snapshot()
		if snap.Path != "" {
			if err := os.Remove(snap.Path); err != nil && !os.IsNotExist(err) {
				o.log.Warn("failed to remove expired upload", "doc_id", snap.ID, "error", err)
				continue
			}
		}
		o.log.Info("evicted expired document", "doc_id", snap.ID)
	}
}
