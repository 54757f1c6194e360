package index

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/philippgille/chromem-go"
)

const collectionName = "chunks"

// Local is the offline search engine: a chromem-go collection persisted to a
// single file, mirroring whatever the remote index holds.
type Local struct {
	db        *chromem.DB
	embedding chromem.EmbeddingFunc
	dbFile    string
}

func NewLocal(dbFile string, embedding chromem.EmbeddingFunc) *Local {
	return &Local{
		db:        chromem.NewDB(),
		embedding: embedding,
		dbFile:    dbFile,
	}
}

// Load restores the collection from disk. A missing file is reported as-is
// so callers can fall back to the remote engine.
func (l *Local) Load() error {
	if _, err := os.Stat(l.dbFile); err != nil {
		return err
	}
	if err := l.db.ImportFromFile(l.dbFile, "", collectionName); err != nil {
		return fmt.Errorf("import local db: %w", err)
	}
	return nil
}

func (l *Local) Save() error {
	return l.db.ExportToFile(l.dbFile, true, "", collectionName)
}

// Rebuild replaces the collection contents with the given records. Records
// carry precomputed embeddings, so no embedding calls happen here.
func (l *Local) Rebuild(ctx context.Context, records []Record) error {
	l.db.DeleteCollection(collectionName)
	coll, err := l.db.CreateCollection(collectionName, map[string]string{}, l.embedding)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, 0, len(records))
	for _, r := range records {
		docs = append(docs, chromem.Document{
			ID:        r.ID,
			Content:   r.Metadata[MetaText],
			Embedding: r.Values,
			Metadata:  r.Metadata,
		})
	}
	if len(docs) == 0 {
		return nil
	}
	if err := coll.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Query embeds the question and returns the topK nearest chunks.
func (l *Local) Query(ctx context.Context, question string, topK int) ([]Result, error) {
	coll := l.db.GetCollection(collectionName, l.embedding)
	if coll == nil {
		return nil, fmt.Errorf("collection %q not found", collectionName)
	}
	if n := coll.Count(); topK > n {
		topK = n
	}
	if topK == 0 {
		return nil, nil
	}

	matches, err := coll.Query(ctx, question, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			ID:       m.ID,
			Score:    m.Similarity,
			Metadata: m.Metadata,
		})
	}
	return results, nil
}
