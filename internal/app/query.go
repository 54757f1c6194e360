package app

import (
	"context"
	"fmt"
	"log"

	"saberes_rag/internal/index"
)

// Search engines for Query.
const (
	EngineLocal    = "local"
	EnginePinecone = "pinecone"
	EngineAuto     = "auto"
)

// Query searches the most relevant fragments for a question. With
// EngineAuto the local database is tried first and Pinecone is the
// fallback.
func (a *App) Query(ctx context.Context, question, engine string, topK int) error {
	log.Printf("🔎 Question: %s", question)

	if engine == EngineLocal || engine == EngineAuto {
		results, err := a.queryLocal(ctx, question, topK)
		if err == nil {
			log.Printf("⚡ Engine: local")
			printResults(results, topK)
			return nil
		}
		if engine == EngineLocal {
			return fmt.Errorf("local index unavailable, run 'ingest' or 'sync' first: %w", err)
		}
		log.Printf("⚠️  No local index, falling back to Pinecone...")
	}

	vec, err := a.embedding(ctx, question)
	if err != nil {
		return fmt.Errorf("embed question: %w", err)
	}
	if err := a.remote.Connect(ctx); err != nil {
		return fmt.Errorf("connect to pinecone: %w", err)
	}
	results, err := a.remote.Query(ctx, vec, topK)
	if err != nil {
		return err
	}

	log.Printf("🌲 Engine: Pinecone (cloud)")
	printResults(results, topK)
	return nil
}

func (a *App) queryLocal(ctx context.Context, question string, topK int) ([]index.Result, error) {
	if err := a.local.Load(); err != nil {
		return nil, err
	}
	return a.local.Query(ctx, question, topK)
}

func printResults(results []index.Result, topK int) {
	log.Printf("📊 Top %d results:", topK)
	for i, r := range results {
		meta := r.Metadata
		log.Printf("  [%d] (similarity: %.4f) — %s | %s | page %s",
			i+1, r.Score, meta[index.MetaSection], index.PeriodOf(meta), meta[index.MetaPage])
		log.Printf("      %s", preview(meta[index.MetaText], 300))
	}
}

// preview truncates text for display without cutting inside a rune.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
