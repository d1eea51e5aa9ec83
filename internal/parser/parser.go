// Package parser ties detection, vendor scanning and the generic fallback
// into the one extraction pipeline the CLI and the HTTP surface share.
package parser

import (
	"strings"

	"github.com/Dromgooles/parser-files/internal/domain"
	"github.com/Dromgooles/parser-files/internal/generic"
	"github.com/Dromgooles/parser-files/internal/port"
	"github.com/Dromgooles/parser-files/internal/vendor"
)

// Options control extraction for one document.
type Options struct {
	// IncludeZeroQuantity keeps rows whose shipped quantity is zero.
	IncludeZeroQuantity bool
}

// Result is the outcome of one extraction.
type Result struct {
	// Vendor is the detected vendor id, or "generic" when no fingerprint
	// matched.
	Vendor domain.VendorID
	Items  []domain.LineItem
}

// Parser extracts line items from invoice documents. It is stateless apart
// from the registry and safe for concurrent use.
type Parser struct {
	registry *vendor.Registry
}

func New() *Parser {
	return &Parser{registry: vendor.NewRegistry()}
}

// Parse detects the vendor from the first page, runs that vendor's scanner,
// and falls back to the generic table parser when the scanner finds nothing.
// The reported vendor stays the detected one even on the fallback path; only
// a document with no fingerprint at all reports "generic". Extraction is
// deterministic: the same document and options always give the same result.
func (p *Parser) Parse(doc port.Document, opts Options) Result {
	scanOpts := vendor.ScanOptions{IncludeZeroQuantity: opts.IncludeZeroQuantity}

	id := p.detect(doc)
	var items []domain.LineItem
	if id != "" {
		items = p.registry.Scan(id, doc, scanOpts)
	}
	if len(items) == 0 {
		items = generic.Extract(doc, generic.Options{IncludeZeroQuantity: opts.IncludeZeroQuantity})
	}
	if id == "" {
		id = domain.VendorGeneric
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return Result{Vendor: id, Items: items}
}

func (p *Parser) detect(doc port.Document) domain.VendorID {
	if doc.PageCount() == 0 {
		return ""
	}
	return vendor.Detect(strings.Join(doc.ExtractText(0), "\n"))
}
