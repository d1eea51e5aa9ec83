package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dromgooles/parser-files/internal/domain"
)

func TestNewResult(t *testing.T) {
	items := []domain.LineItem{
		{
			Quantity:           2,
			ItemNumber:         "10-9847-620",
			SKU:                "10-9847-620",
			ProductDescription: "KOP FOUNTAIN PEN",
			UnitPrice:          domain.Price(1680),
			TotalAmount:        domain.Price(3360),
		},
		{
			Quantity:           3,
			Backorder:          domain.Count(1),
			ItemNumber:         "P101",
			SKU:                "P101",
			ProductDescription: "Churchill",
		},
	}
	r := NewResult(domain.VendorItoya, items)

	assert.True(t, r.Success)
	assert.Equal(t, "itoya", r.Vendor)
	assert.Equal(t, 2, r.ItemCount)
	require.Len(t, r.Table, 3)
	assert.Equal(t, TableColumns, r.Table[0])
	assert.Equal(t, []string{"2", "", "10-9847-620", "10-9847-620", "KOP FOUNTAIN PEN", "1680.00", "3360.00"}, r.Table[1])
	// Unknown prices render empty; a present backorder renders its count.
	assert.Equal(t, []string{"3", "1", "P101", "P101", "Churchill", "", ""}, r.Table[2])
}

func TestNewResultEmpty(t *testing.T) {
	r := NewResult(domain.VendorGeneric, nil)
	assert.True(t, r.Success)
	assert.Zero(t, r.ItemCount)
	// No items means no header row either.
	assert.Equal(t, [][]string{}, r.Table)
	assert.NotNil(t, r.RawItems)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": true,
		"vendor": "generic",
		"table": [],
		"raw_items": [],
		"item_count": 0
	}`, string(data))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", formatPrice(nil))
	assert.Equal(t, "0.00", formatPrice(domain.Price(0)))
	assert.Equal(t, "1680.00", formatPrice(domain.Price(1680)))
	assert.Equal(t, "2.25", formatPrice(domain.Price(2.25)))
}

func TestNewErrorResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("%w: x.pdf", domain.ErrDocumentNotFound), "not_found"},
		{"unreadable", fmt.Errorf("%w: bad xref", domain.ErrDocumentUnreadable), "read_error"},
		{"other", errors.New("boom"), "parse_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewErrorResult(tt.err)
			assert.False(t, r.Success)
			assert.Equal(t, tt.want, r.ErrorType)
			assert.Equal(t, tt.err.Error(), r.Error)
		})
	}
}
