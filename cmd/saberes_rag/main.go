package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"saberes_rag/internal/app"
	"saberes_rag/internal/config"

	"github.com/joho/godotenv"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  saberes_rag ingest --doc <path>                          → Chunk and upload a document (Pinecone + local index)")
	fmt.Println("  saberes_rag query [--engine auto|local|pinecone] [--top-k N] \"your question\"")
	fmt.Println("  saberes_rag query                                        → Interactive mode, one question per line")
	fmt.Println("  saberes_rag sync                                         → Rebuild the local index from Pinecone")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(0)
	}
	command := os.Args[1]

	// .env is optional; real environment wins.
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	cfg.DBFile = filepath.Join(cfg.DataDir, "chunks.gob.gz")
	cfg.ManifestFile = filepath.Join(cfg.DataDir, "manifest.json")

	a := app.New(&cfg)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	switch command {
	case "ingest":
		fs := flag.NewFlagSet("ingest", flag.ExitOnError)
		doc := fs.String("doc", cfg.DocPath, "Path to the document to ingest (.pdf, .md, .txt)")
		fs.Parse(os.Args[2:])

		if *doc == "" {
			log.Fatal("Error: --doc flag (or DOC_PATH) is required\nUsage: saberes_rag ingest --doc=/path/to/document.pdf")
		}
		if _, err := os.Stat(*doc); os.IsNotExist(err) {
			log.Fatalf("Error: document not found: %s", *doc)
		}
		if err := a.Ingest(ctx, *doc); err != nil {
			log.Fatalf("ingest failed: %v", err)
		}

	case "query":
		fs := flag.NewFlagSet("query", flag.ExitOnError)
		engine := fs.String("engine", app.EngineAuto, "Search engine: local, pinecone or auto")
		topK := fs.Int("top-k", cfg.TopK, "Number of results")
		fs.Parse(os.Args[2:])

		switch *engine {
		case app.EngineLocal, app.EnginePinecone, app.EngineAuto:
		default:
			log.Fatalf("Unknown engine: %s. Use 'local', 'pinecone' or 'auto'.", *engine)
		}

		question := strings.TrimSpace(strings.Join(fs.Args(), " "))
		if question == "" {
			if err := a.Run(ctx, *engine, *topK); err != nil {
				log.Fatalf("query failed: %v", err)
			}
			return
		}
		if err := a.Query(ctx, question, *engine, *topK); err != nil {
			log.Fatalf("query failed: %v", err)
		}

	case "sync":
		if err := a.Sync(ctx); err != nil {
			log.Fatalf("sync failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		usage()
		os.Exit(1)
	}
}
