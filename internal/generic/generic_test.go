package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dromgooles/parser-files/internal/port"
)

func row(cells ...string) []port.Cell {
	out := make([]port.Cell, len(cells))
	for i, c := range cells {
		out[i] = port.Str(c)
	}
	return out
}

func TestExtractHeaderedTable(t *testing.T) {
	doc := port.PageSet{{Tables: []port.Table{{
		row("Qty", "Item", "SKU", "Description", "Price", "Amount"),
		row("3", "ABC1", "", "Widget", "10.00", "30.00"),
		row("2", "", "DEF2", "Gadget", "5.00", "10.00"),
	}}}}

	items := Extract(doc, Options{})
	require.Len(t, items, 2)

	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "ABC1", items[0].ItemNumber)
	assert.Equal(t, "ABC1", items[0].SKU)
	assert.Equal(t, "Widget", items[0].ProductDescription)
	require.NotNil(t, items[0].UnitPrice)
	assert.InDelta(t, 10.00, *items[0].UnitPrice, 0.001)
	require.NotNil(t, items[0].TotalAmount)
	assert.InDelta(t, 30.00, *items[0].TotalAmount, 0.001)

	// SKU stands in for a missing item number.
	assert.Equal(t, "DEF2", items[1].ItemNumber)
	assert.Equal(t, "DEF2", items[1].SKU)
}

func TestExtractRequiresThreeHeaderIndicators(t *testing.T) {
	doc := port.PageSet{{Tables: []port.Table{{
		row("Name", "Qty", "Notes", "Office"),
		row("A", "3", "B", "C"),
	}}}}
	assert.Empty(t, Extract(doc, Options{}))
}

func TestExtractSkipsIncompleteRows(t *testing.T) {
	doc := port.PageSet{{Tables: []port.Table{{
		row("Qty", "Item", "SKU", "Description", "Price", "Amount"),
		row("3", "", "", "Widget", "10.00", "30.00"),  // no identifier
		row("", "ABC1", "", "Widget", "10.00", ""),    // no quantity
		row("x", "ABC1", "", "Widget", "10.00", ""),   // unparseable quantity
		row("1", "ABC1", "", "", "10.00", "10.00"),    // no description
		row("2", "XYZ9", "", "Keeper", "4.00", "8.00"),
	}}}}
	items := Extract(doc, Options{})
	require.Len(t, items, 1)
	assert.Equal(t, "XYZ9", items[0].ItemNumber)
}

func TestExtractZeroQuantityGate(t *testing.T) {
	doc := port.PageSet{{Tables: []port.Table{{
		row("Qty", "Item", "SKU", "Description", "Price", "Amount"),
		row("0", "ABC1", "", "Widget", "10.00", "0.00"),
	}}}}
	assert.Empty(t, Extract(doc, Options{}))
	assert.Len(t, Extract(doc, Options{IncludeZeroQuantity: true}), 1)
}

// A headerless table on a later page reuses the last header seen when its
// shape matches, and is read positionally otherwise.
func TestExtractContinuationTables(t *testing.T) {
	doc := port.PageSet{
		{Tables: []port.Table{{
			row("Qty", "Item", "SKU", "Description", "Price", "Amount"),
			row("1", "AAA1", "", "First", "2.00", "2.00"),
		}}},
		{Tables: []port.Table{
			{
				// Same shape: mapped by the remembered header.
				row("2", "BBB2", "", "Second", "3.00", "6.00"),
			},
			{
				// Different shape: positional qty, item, sku, desc, price.
				row("", "4", "CCC3", "CCC3", "Third", "1.50", ""),
			},
		}},
	}
	items := Extract(doc, Options{})
	require.Len(t, items, 3)
	assert.Equal(t, "BBB2", items[1].ItemNumber)
	assert.Equal(t, "CCC3", items[2].ItemNumber)
	assert.Equal(t, 4, items[2].Quantity)
	require.NotNil(t, items[2].UnitPrice)
	assert.InDelta(t, 1.50, *items[2].UnitPrice, 0.001)
	assert.Nil(t, items[2].TotalAmount)
}

func TestExtractDecodesCharRefs(t *testing.T) {
	doc := port.PageSet{{Tables: []port.Table{{
		row("Qty", "Item", "SKU", "Description", "Price", "Amount"),
		row("2", "AB(cid:49)", "", "Pen  (cid:38)  Ink", "6(cid:50).50", "125.00"),
	}}}}
	items := Extract(doc, Options{})
	require.Len(t, items, 1)
	assert.Equal(t, "AB1", items[0].ItemNumber)
	assert.Equal(t, "Pen & Ink", items[0].ProductDescription)
	require.NotNil(t, items[0].UnitPrice)
	assert.InDelta(t, 62.50, *items[0].UnitPrice, 0.001)
}
