// Package generic is the header-driven table parser used when no vendor
// scanner claims a document, and as the fallback when a claimed scanner
// comes back empty. It recognizes a line-items table by its header text and
// maps columns by name, so it tolerates the column orders of vendors that
// never earned a dedicated scanner.
package generic

import (
	"strings"

	"github.com/Dromgooles/parser-files/internal/domain"
	"github.com/Dromgooles/parser-files/internal/normalize"
	"github.com/Dromgooles/parser-files/internal/port"
)

// Options control record emission.
type Options struct {
	IncludeZeroQuantity bool
}

// headerIndicators are the words that mark a line-items table header. A row
// is a header when at least three of them appear across its cells.
var headerIndicators = []string{
	"qty", "quantity", "item", "sku", "product", "price", "amount", "total",
}

var (
	quantityKeys = []string{"qty", "quantity", "qnty", "shipped", "ordered"}
	itemKeys     = []string{"item#", "item #", "item", "item_number", "itemnumber", "item no", "item no."}
	skuKeys      = []string{"sku", "item_code", "item code"}
	productKeys  = []string{"product", "description", "item_description", "item description"}
	priceKeys    = []string{"price", "unit_price", "unit price", "price each"}
	totalKeys    = []string{"amount", "total", "total_amount", "line_total"}
)

// Extract walks every table of every page. The most recent header row is
// remembered so that headerless continuation tables on later pages can be
// read with the same column layout, or positionally when their shape
// differs.
func Extract(doc port.Document, opts Options) []domain.LineItem {
	var items []domain.LineItem
	var lastHeader []string
	for p := 0; p < doc.PageCount(); p++ {
		for _, table := range doc.ExtractTables(p) {
			if len(table) == 0 {
				continue
			}
			headerIdx := -1
			for idx, row := range table {
				if idx >= 5 {
					break
				}
				if isLineItemsHeader(row) {
					headerIdx = idx
					break
				}
			}
			if headerIdx >= 0 {
				lastHeader = headerText(table[headerIdx])
				for _, row := range table[headerIdx+1:] {
					if item, ok := parseRow(row, lastHeader, opts); ok {
						items = append(items, item)
					}
				}
				continue
			}
			if lastHeader == nil {
				continue
			}
			for _, row := range table {
				if rowBlank(row) {
					continue
				}
				if item, ok := parseContinuationRow(row, lastHeader, opts); ok {
					items = append(items, item)
				}
			}
		}
	}
	return items
}

func isLineItemsHeader(row []port.Cell) bool {
	headers := headerText(row)
	matches := 0
	for _, ind := range headerIndicators {
		for _, h := range headers {
			if strings.Contains(h, ind) {
				matches++
				break
			}
		}
	}
	return matches >= 3
}

func headerText(row []port.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		if c != nil {
			out[i] = strings.ToLower(strings.TrimSpace(*c))
		}
	}
	return out
}

// parseRow maps a data row through the header by column name.
func parseRow(row []port.Cell, headers []string, opts Options) (domain.LineItem, bool) {
	if len(row) < 4 {
		return domain.LineItem{}, false
	}
	fields := map[string]string{}
	for i, h := range headers {
		if h == "" || i >= len(row) || row[i] == nil {
			continue
		}
		fields[h] = *row[i]
	}

	qty, ok := fieldQuantity(fields)
	if !ok {
		return domain.LineItem{}, false
	}
	if qty == 0 && !opts.IncludeZeroQuantity {
		return domain.LineItem{}, false
	}

	itemNum := fieldString(fields, itemKeys)
	sku := fieldString(fields, skuKeys)
	product := fieldString(fields, productKeys)
	unitPrice := fieldPrice(fields, priceKeys)
	total := fieldPrice(fields, totalKeys)

	itemNum = normalize.FirstIdentifier(itemNum)
	// Item number and SKU stand in for each other when one is missing.
	if itemNum == "" {
		itemNum = sku
	} else if sku == "" {
		sku = itemNum
	}
	if itemNum == "" || sku == "" || product == "" {
		return domain.LineItem{}, false
	}

	return domain.LineItem{
		Quantity:           qty,
		ItemNumber:         itemNum,
		SKU:                sku,
		ProductDescription: product,
		UnitPrice:          unitPrice,
		TotalAmount:        total,
	}, true
}

// parseContinuationRow reads a row from a headerless continuation table.
// When the shape matches the remembered header it is read by name; otherwise
// the non-empty span is read positionally as qty, item, sku, description,
// price, amount.
func parseContinuationRow(row []port.Cell, headers []string, opts Options) (domain.LineItem, bool) {
	if len(row) == len(headers) {
		return parseRow(row, headers, opts)
	}

	start, end := 0, len(row)
	for i, c := range row {
		if cellFilled(c) {
			start = i
			break
		}
	}
	for i := len(row) - 1; i >= 0; i-- {
		if cellFilled(row[i]) {
			end = i + 1
			break
		}
	}
	trimmed := row[start:end]
	if len(trimmed) < 5 {
		return domain.LineItem{}, false
	}

	qtyStr := cleanCell(trimmed[0])
	if qtyStr == "" {
		return domain.LineItem{}, false
	}
	qty, ok := normalize.ParseQuantity(qtyStr)
	if !ok {
		return domain.LineItem{}, false
	}
	if qty == 0 && !opts.IncludeZeroQuantity {
		return domain.LineItem{}, false
	}

	itemNum := normalize.FirstIdentifier(cleanCell(trimmed[1]))
	sku := cleanCell(trimmed[2])
	desc := cleanCell(trimmed[3])
	if itemNum == "" || sku == "" || desc == "" {
		return domain.LineItem{}, false
	}

	var unitPrice, total *float64
	if s := cleanCell(trimmed[4]); s != "" {
		if v, ok := normalize.ParseMoney(s); ok {
			unitPrice = domain.Price(v)
		}
	}
	if len(trimmed) > 5 {
		if s := cleanCell(trimmed[5]); s != "" {
			if v, ok := normalize.ParseMoney(s); ok {
				total = domain.Price(v)
			}
		}
	}

	return domain.LineItem{
		Quantity:           qty,
		ItemNumber:         itemNum,
		SKU:                sku,
		ProductDescription: desc,
		UnitPrice:          unitPrice,
		TotalAmount:        total,
	}, true
}

func fieldQuantity(fields map[string]string) (int, bool) {
	for _, key := range quantityKeys {
		v, present := fields[key]
		if !present || strings.TrimSpace(v) == "" {
			continue
		}
		if qty, ok := normalize.ParseQuantity(strings.TrimSpace(v)); ok {
			return qty, true
		}
	}
	return 0, false
}

func fieldString(fields map[string]string, keys []string) string {
	for _, key := range keys {
		v, present := fields[key]
		if !present {
			continue
		}
		v = normalize.CollapseSpace(normalize.DecodeCharRefs(strings.TrimSpace(v)))
		if v == "" {
			continue
		}
		switch strings.ToLower(v) {
		case "none", "null":
			continue
		}
		return v
	}
	return ""
}

func fieldPrice(fields map[string]string, keys []string) *float64 {
	for _, key := range keys {
		v, present := fields[key]
		if !present || strings.TrimSpace(v) == "" {
			continue
		}
		if f, ok := normalize.ParseMoney(normalize.DecodeCharRefs(v)); ok {
			return domain.Price(f)
		}
	}
	return nil
}

// cleanCell decodes character references and folds whitespace, the cleanup
// every continuation field gets.
func cleanCell(c port.Cell) string {
	if c == nil {
		return ""
	}
	return normalize.CollapseSpace(normalize.DecodeCharRefs(*c))
}

func cellFilled(c port.Cell) bool {
	return c != nil && strings.TrimSpace(*c) != ""
}

func rowBlank(row []port.Cell) bool {
	for _, c := range row {
		if cellFilled(c) {
			return false
		}
	}
	return true
}
