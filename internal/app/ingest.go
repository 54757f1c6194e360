package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"saberes_rag/internal/chunker"
	"saberes_rag/internal/extract"
	"saberes_rag/internal/index"
)

// Ingest reads a document, chunks it, embeds every chunk and stores the
// vectors in Pinecone and in the local database. Re-ingesting replaces the
// previous contents of both.
func (a *App) Ingest(ctx context.Context, docPath string) error {
	log.Printf("📄 Reading document: %s", docPath)
	pages, err := extract.FromFile(docPath)
	if err != nil {
		return fmt.Errorf("extract document: %w", err)
	}
	log.Printf("   → %d pages with text", len(pages))

	log.Printf("✂️  Semantic chunking (max=%d chars per chunk)...", a.cfg.MaxChunkChars)
	ck := chunker.New(chunker.Config{
		MaxChunkChars: a.cfg.MaxChunkChars,
		MinChunkChars: a.cfg.MinChunkChars,
	})
	chunks := ck.Split(pages)
	log.Printf("   → %d fragments generated, %d dropped below %d chars", len(chunks), ck.Dropped(), a.cfg.MinChunkChars)
	if len(chunks) == 0 {
		return fmt.Errorf("no chunks produced from %s", docPath)
	}

	sections := sectionNames(chunks)
	log.Printf("   → %d sections detected: %s", len(sections), strings.Join(sections, ", "))

	log.Printf("🔢 Generating embeddings for %d fragments...", len(chunks))
	records, err := a.embedChunks(ctx, chunks)
	if err != nil {
		return err
	}

	log.Printf("🌲 Connecting to Pinecone...")
	if err := a.remote.EnsureIndex(ctx, a.cfg.EmbeddingDim); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}

	log.Printf("🗑️  Clearing previous vectors...")
	if err := a.remote.DeleteAll(ctx); err != nil {
		return err
	}

	log.Printf("🚀 Uploading vectors to Pinecone...")
	if err := a.remote.Upsert(ctx, records); err != nil {
		return err
	}

	log.Printf("💾 Building local index...")
	if err := a.local.Rebuild(ctx, records); err != nil {
		return err
	}
	if err := a.local.Save(); err != nil {
		return fmt.Errorf("save local db: %w", err)
	}

	if err := a.saveManifest(&Manifest{
		Source:     docPath,
		Pages:      len(pages),
		Chunks:     len(chunks),
		Dropped:    ck.Dropped(),
		Sections:   sections,
		IngestedAt: time.Now(),
	}); err != nil {
		log.Printf("⚠️  Failed to save manifest: %v", err)
	}

	log.Printf("✅ Ingest complete: %d fragments in index %q (Pinecone + local)", len(chunks), a.cfg.PineconeIndex)
	return nil
}

// embedChunks embeds chunk texts with bounded concurrency, preserving the
// chunk order in the returned records.
func (a *App) embedChunks(ctx context.Context, chunks []chunker.Chunk) ([]index.Record, error) {
	sem := make(chan struct{}, a.cfg.MaxConcurrency)
	var wg sync.WaitGroup

	records := make([]index.Record, len(chunks))
	errs := make([]error, len(chunks))

	for i, ch := range chunks {
		wg.Add(1)
		go func(i int, ch chunker.Chunk) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			vec, err := a.embedding(ctx, ch.Text)
			if err != nil {
				errs[i] = err
				return
			}
			records[i] = index.Record{
				ID:     fmt.Sprintf("chunk-%d", i),
				Values: vec,
				Metadata: map[string]string{
					index.MetaText:    ch.Text,
					index.MetaPage:    strconv.Itoa(ch.Page),
					index.MetaSection: ch.Section,
					index.MetaPeriod:  ch.Period,
				},
			}
		}(i, ch)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d: %w", i, err)
		}
	}
	return records, nil
}

func sectionNames(chunks []chunker.Chunk) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, ch := range chunks {
		if _, ok := seen[ch.Section]; ok {
			continue
		}
		seen[ch.Section] = struct{}{}
		names = append(names, ch.Section)
	}
	sort.Strings(names)
	return names
}
