package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
	"github.com/sk-sazzad/tinystepsbd/internal/store"
)

func main() {
	// Load shared .env from repo root (works when run from cmd/ too)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	var (
		apiURL   = flag.String("api-url", os.Getenv("API_URL"), "product API endpoint")
		query    = flag.String("q", "", "search text")
		category = flag.String("category", "", "category filter")
	)
	flag.Parse()

	if *apiURL == "" {
		fmt.Fprintln(os.Stderr, "API_URL is required (flag -api-url or env)")
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := catalog.NewClient(*apiURL, 30*time.Second, logger)
	loader := catalog.NewLoader(client, store.NewMemoryStore(), false, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	source, err := loader.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	products := loader.Search(catalog.Query{Text: *query, Category: *category})
	fmt.Printf("Loaded %d products (source: %s)\n\n", len(products), source)
	for _, p := range products {
		fmt.Printf("%-12s %-40s %6d BDT  %s/%s\n", p.ID, p.Name, p.Price, p.Category, p.Size)
	}
}
