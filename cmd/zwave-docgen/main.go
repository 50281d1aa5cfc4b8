// Command zwave-docgen renders Markdown reference pages from command class
// catalogs.
//
// Usage:
//
//	zwave-docgen -catalog docs/catalog/command-classes.yaml \
//	    -extensions docs/catalog/extensions/door-lock.yaml -output site/reference
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	catalogPath := flag.String("catalog", "docs/catalog/command-classes.yaml", "Built-in catalog YAML")
	extensions := flag.String("extensions", "", "Comma-separated extension catalogs")
	outputDir := flag.String("output", "", "Output directory for generated Markdown")
	flag.Parse()

	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: zwave-docgen -output <dir> [-catalog <file>] [-extensions <a.yaml,b.yaml>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	paths := []string{*catalogPath}
	for _, p := range strings.Split(*extensions, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	if err := run(paths, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPaths []string, outputDir string) error {
	m, err := BuildDocModel(catalogPaths)
	if err != nil {
		return fmt.Errorf("building doc model: %w", err)
	}
	return generateAll(m, outputDir)
}
