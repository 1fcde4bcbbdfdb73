// Command prettyhttp pretty-prints JSON documents from files or stdin using
// the same structured printer the transport uses for HTTP bodies.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/Mohamed-7018/prettyhttp"
)

func main() {
	width := flag.Int("width", prettyhttp.DefaultOptions.MaxWidth, "max display columns before wrapping")
	compact := flag.BoolP("compact", "c", true, "flatten small nested structures onto one line")
	prefix := flag.String("prefix", "", "prefix applied to every output line")
	paletteName := flag.String("palette", "default", "color palette name")
	noColor := flag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	listPalettes := flag.Bool("list-palettes", false, "print available palette names and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listPalettes {
		for _, name := range prettyhttp.PaletteNames() {
			fmt.Println(name)
		}
		return
	}

	enableColor := !*noColor && isatty.IsTerminal(os.Stdout.Fd())
	renderer := lipgloss.NewRenderer(os.Stdout)
	pal, err := prettyhttp.ResolvePalette(*paletteName, renderer, enableColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prettyhttp: %v\n", err)
		os.Exit(2)
	}

	opts := *prettyhttp.DefaultOptions
	opts.MaxWidth = *width
	opts.Compact = *compact
	opts.Prefix = *prefix
	opts.InitialIndent = 0

	sink := func(line string) {
		fmt.Println(pal.Body.Render(line))
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prettyhttp: %v\n", err)
			os.Exit(1)
		}
		v, err := prettyhttp.FromJSON(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prettyhttp: %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := prettyhttp.PrintValue(v, &opts, sink); err != nil {
			fmt.Fprintf(os.Stderr, "prettyhttp: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
