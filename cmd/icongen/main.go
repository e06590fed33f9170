// Command icongen draws the application icon and its adaptive-icon
// foreground layer.
//
// Run from the project root with no arguments to write
// assets/icon/app_icon.png and assets/icon/app_icon_foreground.png.
// The output directory must already exist.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/verifai/brandmark"
	"github.com/verifai/brandmark/icon"
)

func main() {
	var (
		dir     = flag.String("dir", icon.DefaultDir, "output directory")
		smooth  = flag.Bool("antialias", false, "smooth edges with anti-aliasing")
		verbose = flag.Bool("v", false, "log drawing diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		brandmark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	written, err := icon.Generate(*dir, brandmark.WithAntialias(*smooth))
	for _, p := range written {
		log.Printf("Created %s\n", filepath.Base(p))
	}
	if err != nil {
		log.Fatalf("Failed to create icons: %v", err)
	}

	log.Println("Icons created successfully! Run: flutter pub get && flutter pub run flutter_launcher_icons")
}
