// Package pdftext is the default TokenProvider, backed by the pure-Go
// ledongthuc/pdf reader. It supplies per-page text lines only: the library
// has no grid detection, so pages report zero tables. Callers that need
// table grids inject their own provider.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Dromgooles/parser-files/internal/domain"
	"github.com/Dromgooles/parser-files/internal/port"
)

// Provider opens PDF files from the local filesystem.
type Provider struct{}

// New returns a filesystem PDF provider.
func New() Provider { return Provider{} }

// Open reads every page of the PDF at path into an in-memory page set.
func (Provider) Open(path string) (port.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	defer f.Close()

	pages := make(port.PageSet, 0, r.NumPage())
	for n := 1; n <= r.NumPage(); n++ {
		pg := r.Page(n)
		if pg.V.IsNull() {
			pages = append(pages, port.Page{})
			continue
		}
		rows, err := pg.GetTextByRow()
		if err != nil {
			// A page that cannot be decoded contributes zero records.
			pages = append(pages, port.Page{})
			continue
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			var b strings.Builder
			for _, word := range row.Content {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			if line := strings.TrimSpace(b.String()); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, port.Page{Lines: lines})
	}
	return pages, nil
}
