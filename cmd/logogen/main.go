// Command logogen draws the four-color ring-and-bar logo.
//
// Run from the project root with no arguments to write
// assets/images/google_logo.png. The output directory must already exist.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/verifai/brandmark"
	"github.com/verifai/brandmark/logo"
)

func main() {
	var (
		output  = flag.String("o", logo.DefaultPath, "output file")
		smooth  = flag.Bool("antialias", false, "smooth edges with anti-aliasing")
		verbose = flag.Bool("v", false, "log drawing diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		brandmark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := logo.Generate(*output, brandmark.WithAntialias(*smooth)); err != nil {
		log.Fatalf("Failed to create logo: %v", err)
	}

	log.Printf("Google logo created successfully at %s\n", *output)
}
