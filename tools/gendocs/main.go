package main

import (
	"flag"
	"log"
	"os"

	"github.com/loomcms/cli/cmd"
	"github.com/spf13/cobra/doc"
)

func main() {
	outputDir := flag.String("dir", "./docs", "Output directory for generated documentation")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Build the command tree without touching config files or the API client
	rootCmd, err := cmd.RootCommand(false)
	if err != nil {
		log.Fatalf("Failed to build root command: %v", err)
	}

	if err := doc.GenMarkdownTree(rootCmd, *outputDir); err != nil {
		log.Fatalf("Failed to generate markdown docs: %v", err)
	}

	log.Printf("Successfully generated markdown documentation in %s", *outputDir)
}
