package port

// Cell is one table cell. A nil cell means the extractor found nothing at
// that grid position; a non-nil cell may contain embedded line breaks.
type Cell = *string

// Table is one extracted row-by-cell grid.
type Table [][]Cell

// Page holds the token streams of a single document page.
type Page struct {
	Lines  []string
	Tables []Table
}

// Document is one input document exposed page by page, in page order.
type Document interface {
	PageCount() int
	// ExtractText returns the ordered text lines of page i, or nil when the
	// page has no extractable text.
	ExtractText(i int) []string
	// ExtractTables returns the table grids detected on page i.
	ExtractTables(i int) []Table
}

// TokenProvider is the upstream extraction collaborator: it turns an input
// file into a page-addressable token stream.
type TokenProvider interface {
	Open(path string) (Document, error)
}

// PageSet is an in-memory Document implementation, used by providers and as
// a test fixture.
type PageSet []Page

func (p PageSet) PageCount() int { return len(p) }

func (p PageSet) ExtractText(i int) []string {
	if i < 0 || i >= len(p) {
		return nil
	}
	return p[i].Lines
}

func (p PageSet) ExtractTables(i int) []Table {
	if i < 0 || i >= len(p) {
		return nil
	}
	return p[i].Tables
}

// Str returns a cell holding s. Test helper for building grids.
func Str(s string) Cell { return &s }
