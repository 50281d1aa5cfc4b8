// Command zwave-catgen generates command class and command ID constants
// from a catalog YAML file.
//
//	zwave-catgen -catalog docs/catalog/command-classes.yaml -out pkg/commandclass
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/zwave-protocol/zwave-go/pkg/specparse"
)

const outputFile = "ids_gen.go"

func main() {
	catalogPath := flag.String("catalog", "", "Path to the catalog YAML")
	outputDir := flag.String("out", "", "Output directory for "+outputFile)
	pkgName := flag.String("package", "commandclass", "Package name of the generated file")
	check := flag.Bool("check", false, "Exit non-zero if the generated file is out of date instead of writing it")
	flag.Parse()

	if *catalogPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: zwave-catgen -catalog <path> -out <dir> [-package <name>] [-check]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*catalogPath, *outputDir, *pkgName, *check); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath, outputDir, pkgName string, check bool) error {
	cat, err := specparse.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	code, err := Generate(cat, pkgName)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	outPath := filepath.Join(outputDir, outputFile)
	formatted, err := format(outPath, code)
	if err != nil {
		return err
	}

	if check {
		current, err := os.ReadFile(outPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", outPath, err)
		}
		if !bytes.Equal(current, formatted) {
			return fmt.Errorf("%s is out of date; run zwave-catgen", outPath)
		}
		fmt.Printf("  %s is up to date\n", outPath)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("  generated %s\n", outPath)
	return nil
}

// format runs goimports over generated code. On failure the raw code is
// written next to path for debugging.
func format(path, code string) ([]byte, error) {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return nil, fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return formatted, nil
}
