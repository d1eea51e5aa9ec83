package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dromgooles/parser-files/internal/domain"
)

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteItems([]domain.LineItem{{
		Quantity:           2,
		ItemNumber:         "K-600",
		SKU:                "K-600",
		ProductDescription: "Fountain Pen, Black",
		UnitPrice:          domain.Price(45),
		TotalAmount:        domain.Price(90),
	}}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, TableColumns, rows[0])
	assert.Equal(t, []string{"2", "", "K-600", "K-600", "Fountain Pen, Black", "45.00", "90.00"}, rows[1])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"invoice 2024.pdf", "invoice_2024_pdf"},
		{"a/b\\c", "a_b_c"},
		{"__trimmed__", "trimmed"},
		{"multi   spaces", "multi_spaces"},
		{"keep-this_name", "keep-this_name"},
		{strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("my invoice", "csv")
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "my_invoice_"+date+".csv", got)
}
