package main

import (
	"context"
	"flag"
	"log"
	"sync"
	"time"

	"translator-ai-be/internal/bootstrap"
	"translator-ai-be/internal/config"
	"translator-ai-be/internal/loader"
	"translator-ai-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

func main() {
	filePath := flag.String("file", "data/phrases.json", "path to the JSON seed file")
	batchSize := flag.Int("batch", 50, "records per upsert batch")
	workers := flag.Int("workers", 4, "concurrent upsert batches")
	flag.Parse()

	cfg := config.Load()

	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}
	index := bootstrap.NewVectorIndex(gormDB, cfg)

	items, err := loader.ReadFile(*filePath, cfg.Ai.EmbeddingDimension)
	if err != nil {
		color.Red("✗ Seed file rejected: %v", err)
		log.Fatal("aborting, no records were written")
	}
	color.Cyan("Loaded %d items from %s", len(items), *filePath)

	batches := loader.Chunk(items, *batchSize)
	start := time.Now()

	sem := make(chan struct{}, *workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed int

	for i, batch := range batches {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, batch []loader.Item) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := index.Upsert(context.Background(), loader.ToRecords(batch)); err != nil {
				color.Red("✗ Batch %d/%d failed: %v", i+1, len(batches), err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			color.Green("✓ Batch %d/%d upserted (%d records)", i+1, len(batches), len(batch))
		}(i, batch)
	}
	wg.Wait()

	if failed > 0 {
		color.Red("Done with errors: %d/%d batches failed", failed, len(batches))
		log.Fatal("seed incomplete")
	}
	color.Green("Done: %d records in %d batches (%s)", len(items), len(batches), time.Since(start).Round(time.Millisecond))
}
