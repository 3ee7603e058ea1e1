package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/screenlens/ui-detect/internal/config"
	"github.com/screenlens/ui-detect/internal/detect"
	"github.com/screenlens/ui-detect/internal/enrich"
	"github.com/screenlens/ui-detect/internal/imaging"
	"github.com/screenlens/ui-detect/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout carries the JSON document)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one detection pass and returns the process exit code.
// Diagnostics go to the log; stdout receives only the JSON document.
func run(args []string, stdout io.Writer) int {
	// Handle --version and --help before flag parsing
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "ui-detect %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printHelp(stdout)
			return 0
		}
	}

	fs := flag.NewFlagSet("ui-detect", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML file overriding detection thresholds")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stdout, "[]")
		return 1
	}
	debug := os.Getenv("UI_DETECT_LOG_LEVEL") == "debug"

	if fs.NArg() < 1 {
		// A missing image path is not an error: emit an empty result list.
		fmt.Fprintln(stdout, "[]")
		return 0
	}
	imagePath := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Printf("Config error: %v", err)
			fmt.Fprintln(stdout, "[]")
			return 1
		}
	}

	img, err := imaging.Load(imagePath)
	if err != nil {
		log.Printf("Image error: %v", err)
		fmt.Fprintln(stdout, "[]")
		return 1
	}

	regions := detect.Detect(img, cfg)
	if debug {
		log.Printf("Detected %d regions in %s", len(regions), imagePath)
	}

	enricher := enrich.New(ocr.New(cfg.OCRLanguage))
	labeled := enricher.EnrichAll(img, regions)

	out, err := json.Marshal(labeled)
	if err != nil {
		log.Printf("Encoding error: %v", err)
		fmt.Fprintln(stdout, "[]")
		return 1
	}
	fmt.Fprintln(stdout, string(out))

	// Side artifact: the annotated copy. A write failure is logged but does
	// not change the exit status since the primary output is already out.
	boxes := make([]imaging.Box, len(labeled))
	for i, lr := range labeled {
		boxes[i] = imaging.Box{X: lr.X, Y: lr.Y, Width: lr.Width, Height: lr.Height, Label: lr.Label}
	}
	annotated := imaging.Annotate(img, boxes)
	if err := imaging.SaveAnnotated(annotated, imaging.AnnotatedPath(imagePath)); err != nil {
		log.Printf("Annotation error: %v", err)
	}
	return 0
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "ui-detect - detect UI element regions in a screenshot")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: ui-detect [-config file.yaml] <image>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -config file.yaml    Override detection thresholds")
	fmt.Fprintln(w, "  --version, -v        Print version information")
	fmt.Fprintln(w, "  --help, -h           Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  UI_DETECT_LOG_LEVEL=debug    Enable debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The detected regions are written to stdout as a JSON array.")
	fmt.Fprintln(w, "An annotated copy of the image is written next to the input.")
}
