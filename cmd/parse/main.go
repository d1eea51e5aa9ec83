package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Dromgooles/parser-files/internal/config"
	"github.com/Dromgooles/parser-files/internal/export"
	"github.com/Dromgooles/parser-files/internal/parser"
	"github.com/Dromgooles/parser-files/internal/pdftext"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <input.pdf> <output.json>\n", os.Args[0])
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2]); err != nil {
		log.Fatal(err)
	}
}

func run(input, output string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	doc, err := pdftext.New().Open(input)
	if err != nil {
		// Extraction failures still produce an output file so callers can
		// read the error envelope instead of parsing stderr.
		if werr := writeJSON(output, export.NewErrorResult(err)); werr != nil {
			return fmt.Errorf("failed to write error result: %w", werr)
		}
		return fmt.Errorf("failed to open %s: %w", input, err)
	}

	result := parser.New().Parse(doc, parser.Options{
		IncludeZeroQuantity: cfg.Parser.IncludeZeroQuantity,
	})

	if err := writeJSON(output, export.NewResult(result.Vendor, result.Items)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	log.Printf("parsed %s: vendor=%s items=%d", input, result.Vendor, len(result.Items))
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
