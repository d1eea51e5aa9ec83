// Package export assembles extraction output: the JSON result envelope the
// CLI and API emit, and the CSV/XLSX renderings of the item table.
package export

import (
	"errors"
	"strconv"

	"github.com/Dromgooles/parser-files/internal/domain"
)

// TableColumns is the fixed header of the presentation table.
var TableColumns = []string{
	"Quantity",
	"Backorder",
	"Item Number",
	"SKU",
	"Description",
	"Unit Price",
	"Total",
}

// Result is the success envelope. All fields are always present, even when
// empty, so consumers never need to probe for keys.
type Result struct {
	Success   bool              `json:"success"`
	Vendor    string            `json:"vendor"`
	Table     [][]string        `json:"table"`
	RawItems  []domain.LineItem `json:"raw_items"`
	ItemCount int               `json:"item_count"`
}

// ErrorResult is the failure envelope.
type ErrorResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

// NewResult builds the success envelope for a parsed document. An extraction
// with no items yields an empty table with no header row.
func NewResult(vendor domain.VendorID, items []domain.LineItem) Result {
	if items == nil {
		items = []domain.LineItem{}
	}
	return Result{
		Success:   true,
		Vendor:    string(vendor),
		Table:     itemsToTable(items),
		RawItems:  items,
		ItemCount: len(items),
	}
}

// NewErrorResult classifies err and builds the failure envelope.
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{
		Success:   false,
		Error:     err.Error(),
		ErrorType: errorKind(err),
	}
}

// itemsToTable renders items as a header row plus one string row per item.
func itemsToTable(items []domain.LineItem) [][]string {
	if len(items) == 0 {
		return [][]string{}
	}
	table := make([][]string, 0, len(items)+1)
	table = append(table, TableColumns)
	for _, item := range items {
		table = append(table, itemRow(item))
	}
	return table
}

func itemRow(item domain.LineItem) []string {
	backorder := ""
	if item.Backorder != nil {
		backorder = strconv.Itoa(*item.Backorder)
	}
	return []string{
		strconv.Itoa(item.Quantity),
		backorder,
		item.ItemNumber,
		item.SKU,
		item.ProductDescription,
		formatPrice(item.UnitPrice),
		formatPrice(item.TotalAmount),
	}
}

// formatPrice renders a price with two decimals, or empty for an unknown
// price. Zero is a real price and renders as "0.00".
func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// errorKind maps an error to the stable error_type tag in the failure
// envelope.
func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrDocumentUnreadable):
		return "read_error"
	default:
		return "parse_error"
	}
}
