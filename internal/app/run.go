package app

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// Run reads questions from stdin until EOF or interrupt, answering each one
// with the configured engine.
func (a *App) Run(ctx context.Context, engine string, topK int) error {
	log.Println("Interactive mode. Type a question per line, Ctrl+C to exit.")
	if m, err := a.loadManifest(); err == nil {
		log.Printf("Local index: %d chunks from %s (ingested %s)",
			m.Chunks, m.Source, m.IngestedAt.Format("2006-01-02 15:04"))
	}

	scanner := bufio.NewScanner(os.Stdin)
	const maxLineSize = 1024 * 1024
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	for {
		select {
		case <-ctx.Done():
			log.Println("Shutting down")
			return nil
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("stdin error: %w", err)
				}
				log.Println("stdin closed")
				return nil
			}

			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if err := a.Query(ctx, question, engine, topK); err != nil {
				log.Printf("❌ Query failed: %v", err)
			}
		}
	}
}
