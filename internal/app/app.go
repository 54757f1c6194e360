package app

import (
	"encoding/json"
	"os"
	"time"

	"github.com/philippgille/chromem-go"

	"saberes_rag/internal/config"
	"saberes_rag/internal/index"
)

type App struct {
	cfg       *config.Config
	embedding chromem.EmbeddingFunc
	local     *index.Local
	remote    *index.Pinecone
}

func New(cfg *config.Config) *App {
	embedding := chromem.NewEmbeddingFuncOllama(cfg.OllamaEmbedModel, cfg.OllamaURL+"/api")
	return &App{
		cfg:       cfg,
		embedding: embedding,
		local:     index.NewLocal(cfg.DBFile, embedding),
		remote:    index.NewPinecone(cfg.PineconeAPIKey, cfg.PineconeIndex, cfg.PineconeCloud, cfg.PineconeRegion),
	}
}

// Manifest records what the last ingest or sync produced.
type Manifest struct {
	Source     string    `json:"source"`
	Pages      int       `json:"pages"`
	Chunks     int       `json:"chunks"`
	Dropped    int       `json:"dropped"`
	Sections   []string  `json:"sections"`
	IngestedAt time.Time `json:"ingested_at"`
}

func (a *App) saveManifest(m *Manifest) error {
	f, err := os.Create(a.cfg.ManifestFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(m)
}

func (a *App) loadManifest() (*Manifest, error) {
	f, err := os.Open(a.cfg.ManifestFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
