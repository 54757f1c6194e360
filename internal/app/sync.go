package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"saberes_rag/internal/index"
)

// Sync downloads every vector from Pinecone and rebuilds the local database.
// Useful when the index was updated from another environment.
func (a *App) Sync(ctx context.Context) error {
	log.Printf("🌲 Connecting to Pinecone...")
	if err := a.remote.Connect(ctx); err != nil {
		return fmt.Errorf("connect to pinecone: %w", err)
	}

	total, err := a.remote.Stats(ctx)
	if err != nil {
		return err
	}
	if total == 0 {
		log.Printf("⚠️  Pinecone index is empty. Run 'ingest' first.")
		return nil
	}
	log.Printf("   → %d vectors in Pinecone", total)

	log.Printf("📥 Downloading vectors from Pinecone...")
	ids, err := a.remote.ListIDs(ctx)
	if err != nil {
		return err
	}
	records, err := a.remote.Fetch(ctx, ids)
	if err != nil {
		return err
	}
	sortRecordsByID(records)

	log.Printf("💾 Rebuilding local index...")
	if err := a.local.Rebuild(ctx, records); err != nil {
		return err
	}
	if err := a.local.Save(); err != nil {
		return fmt.Errorf("save local db: %w", err)
	}

	if err := a.saveManifest(&Manifest{
		Source:     "pinecone:" + a.cfg.PineconeIndex,
		Chunks:     len(records),
		IngestedAt: time.Now(),
	}); err != nil {
		log.Printf("⚠️  Failed to save manifest: %v", err)
	}

	log.Printf("✅ Sync complete: %d vectors downloaded into the local index", len(records))
	return nil
}

// sortRecordsByID orders chunk-<n> IDs numerically so the local index keeps
// document order.
func sortRecordsByID(records []index.Record) {
	sort.Slice(records, func(i, j int) bool {
		return chunkNum(records[i].ID) < chunkNum(records[j].ID)
	})
}

func chunkNum(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "chunk-"))
	if err != nil {
		return 0
	}
	return n
}
