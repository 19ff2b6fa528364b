package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sk-sazzad/tinystepsbd/internal/catalog"
	"github.com/sk-sazzad/tinystepsbd/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Testing product API connection...\n\n")
	fmt.Printf("API URL: %s\n\n", cfg.API.URL)

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := catalog.NewClient(cfg.API.URL, 30*time.Second, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	products, err := client.FetchProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n\n", err)
		fmt.Println("Please check:")
		fmt.Println("  1. API_URL points at the deployed script endpoint")
		fmt.Println("  2. The script is deployed with public access")
		fmt.Println("  3. The sheet has a 'Product ID' column with values")
		os.Exit(1)
	}

	fmt.Println("Connection successful!")
	fmt.Printf("Products returned: %d\n", len(products))
	if len(products) > 0 {
		fmt.Printf("First product: %s (%s, %d BDT)\n",
			products[0].Name, products[0].ID, products[0].Price)
	}
}
