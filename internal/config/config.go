package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	DocPath string `env:"DOC_PATH"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	PineconeAPIKey string `env:"PINECONE_API_KEY"`
	PineconeIndex  string `env:"PINECONE_INDEX" envDefault:"saberes-2eso"`
	PineconeCloud  string `env:"PINECONE_CLOUD" envDefault:"aws"`
	PineconeRegion string `env:"PINECONE_REGION" envDefault:"us-east-1"`

	OllamaURL        string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaEmbedModel string `env:"OLLAMA_EMBED_MODEL" envDefault:"nomic-embed-text"`
	EmbeddingDim     int    `env:"EMBEDDING_DIM" envDefault:"768"`

	MaxChunkChars  int `env:"MAX_CHUNK_CHARS" envDefault:"800"`
	MinChunkChars  int `env:"MIN_CHUNK_CHARS" envDefault:"20"`
	TopK           int `env:"TOP_K" envDefault:"5"`
	MaxConcurrency int `env:"MAX_CONCURRENCY" envDefault:"8"`

	// Derived from DataDir, filled in by main.
	ManifestFile string
	DBFile       string
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
