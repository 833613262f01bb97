package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/papertest/testgen/pkg/importer"
	"github.com/papertest/testgen/pkg/models"
	"github.com/papertest/testgen/pkg/pdf"
	"github.com/papertest/testgen/pkg/project"
)

type options struct {
	path       string
	perfTest   bool
	iterations int
	seed       string
	output     string
	fonts      string
	importPath string
	verbose    bool
}

func main() {
	// A missing .env is fine, flags and the environment still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: loading .env: %v\n", err)
		os.Exit(1)
	}

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("testgen", flag.ContinueOnError)
	fs.BoolVar(&opts.perfTest, "perf-test", false, "Generate the PDF repeatedly and report median and mean time (requires PATH)")
	fs.IntVar(&opts.iterations, "iterations", envInt("TESTGEN_ITERATIONS", defaultIterations), "Number of runs for -perf-test")
	fs.StringVar(&opts.seed, "seed", os.Getenv("TESTGEN_SEED"), "Seed for answer and question shuffling (default: time based)")
	fs.StringVar(&opts.output, "output", os.Getenv("TESTGEN_OUTPUT"), "Override the output PDF path")
	fs.StringVar(&opts.fonts, "fonts", os.Getenv("TESTGEN_FONTS_PATH"), "Override the fonts directory")
	fs.StringVar(&opts.importPath, "import", "", "Convert a question sheet (.txt or .pdf) into a project written to PATH, or stdout")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: testgen [flags] [PATH] [--perf-test]\n")
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs accepts flags before and after the project path.
func parseArgs(args []string) (options, error) {
	var opts options
	fs := newFlagSet(&opts)

	for {
		if err := fs.Parse(args); err != nil {
			return opts, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if opts.path != "" {
			return opts, fmt.Errorf("unexpected argument %q", rest[0])
		}
		opts.path = rest[0]
		args = rest[1:]
	}

	if opts.perfTest && opts.path == "" {
		return opts, errors.New("-perf-test requires a project file")
	}
	if opts.iterations < 1 {
		return opts, fmt.Errorf("-iterations must be at least 1, got %d", opts.iterations)
	}
	return opts, nil
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func run(opts options, stdout io.Writer) error {
	logger := log.New(io.Discard, "", log.Ltime)
	if opts.verbose {
		logger.SetOutput(os.Stderr)
	}

	if opts.importPath != "" {
		return importSheet(opts, stdout, logger)
	}

	if opts.path == "" {
		// Without a project there is nothing to render; print a template to start from.
		data, err := project.Marshal(models.NewProject(), project.TOML)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	logger.Printf("Loading project: %s", opts.path)
	p, err := project.Load(opts.path)
	if err != nil {
		return err
	}
	if opts.output != "" {
		p.Settings.Output = opts.output
	}
	if opts.fonts != "" {
		p.Settings.FontsPath = opts.fonts
	}
	logger.Printf("Loaded %d questions, language %s, font %s", len(p.Questions), p.Settings.Language, p.Settings.Font)

	rng, err := newRand(opts.seed)
	if err != nil {
		return err
	}

	if opts.perfTest {
		return perfTest(p, rng, opts.iterations, stdout)
	}

	elapsed, err := pdf.GeneratePDF(p, rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Successfully wrote %s in %v\n", p.Settings.Output, elapsed)
	return nil
}

func newRand(seed string) (*rand.Rand, error) {
	if seed == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", seed, err)
	}
	return pdf.NewSeededRand(n), nil
}

func importSheet(opts options, stdout io.Writer, logger *log.Logger) error {
	logger.Printf("Parsing sheet: %s", opts.importPath)
	sheet, err := importer.ParseFile(opts.importPath)
	if err != nil {
		return err
	}
	logger.Printf("Parsed %d questions", len(sheet.Questions))

	p := sheet.Project()
	if opts.output != "" {
		p.Settings.Output = opts.output
	}
	if opts.fonts != "" {
		p.Settings.FontsPath = opts.fonts
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if opts.path == "" {
		data, err := project.Marshal(p, project.TOML)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	start := time.Now()
	if err := project.Save(opts.path, p); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Successfully wrote %d questions to %s in %v\n", len(p.Questions), opts.path, time.Since(start))
	return nil
}
