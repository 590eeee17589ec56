package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"crosswarped.com/merlin"
)

func main() {
	pool := flag.String("pool", "", "The original letters of the puzzle")
	used := flag.String("used", "", "Text already typed on the scratch pad")
	usedFile := flag.String("used_file", "", "The file to load scratch pad text from")
	showVariants := flag.Bool("variants", false, "Print the fungible-letter variants of the remaining pool")
	maxVariants := flag.Int("max_variants", merlin.MaxVariants, "The maximum number of variants to print")
	verbose := flag.Bool("v", false, "Log debug output")

	profile := flag.Bool("profile", false, "Profile variant generation")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	if *pool == "" {
		log.Error("-pool is required")
		os.Exit(1)
	}
	if *used != "" && *usedFile != "" {
		log.Error("Cannot use both -used and -used_file")
		os.Exit(1)
	}

	text := *used
	if *usedFile != "" {
		log.Debugw("Loading scratch pad from file", "file", *usedFile)
		var err error
		if text, err = loadFromFile(*usedFile); err != nil {
			log.Errorw("Error loading scratch pad", "file", *usedFile, "error", err)
			os.Exit(1)
		}
	}

	pad := merlin.NewScratchPad(text)
	remaining := pad.Remaining(*pool)
	log.Debugw("Computed remaining pool",
		"original", *pool,
		"pad", pad.DebugString(),
		"used", pad.UsedLetters(),
		"remaining", remaining.String(),
	)

	printPool(os.Stdout, *pool, pad)

	if !*showVariants {
		return
	}

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Errorw("Error creating profile file", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Errorw("Error starting CPU profile", "error", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	variants := merlin.GenerateVariantsWithOptions(pad.Pool(*pool), merlin.Options{Limit: *maxVariants})
	log.Debugw("Generated variants", "count", len(variants))
	printVariants(os.Stdout, variants)
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func printPool(w io.Writer, original string, pad merlin.ScratchPad) {
	remaining := pad.Remaining(original)
	left := remaining.Clamped().Total()

	fmt.Fprintln(w, "--------------------------------")
	fmt.Fprintln(w, "Remaining:", remaining.Clamped().String())
	fmt.Fprintln(w, "Pool:     ", pad.Pool(original))
	fmt.Fprintf(w, "Left:      %d of %d\n", left, merlin.CountLetters(original).Total())
	if over := remaining.Negative(); len(over) > 0 {
		fmt.Fprintln(w, "Overused: ", string(over))
	}
}

func printVariants(w io.Writer, variants []merlin.Variant) {
	fmt.Fprintln(w, "--------------------------------")
	width := 0
	for _, v := range variants {
		width = max(width, len(v.Text))
	}
	for _, v := range variants {
		fmt.Fprintf(w, "%-*s  %s\n", width, v.Text, v.Change)
	}
}

// loadFromFile reads scratch pad text from path. Lines starting with '#' are
// comments and are dropped.
func loadFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", errors.Wrapf(err, "scan %s", path)
	}
	return strings.Join(lines, "\n"), nil
}
