package domain

// VendorID identifies a vendor whose invoice layout has a dedicated scanner.
type VendorID string

const (
	VendorItoya            VendorID = "itoya"
	VendorLuxuryBrands     VendorID = "luxury_brands"
	VendorRediform         VendorID = "rediform"
	VendorTomsStudio       VendorID = "toms_studio"
	VendorColes            VendorID = "coles"
	VendorLamy             VendorID = "lamy"
	VendorPilot            VendorID = "pilot"
	VendorMontblanc        VendorID = "montblanc"
	VendorLighthouse       VendorID = "lighthouse"
	VendorRetro51          VendorID = "retro51"
	VendorTWSBI            VendorID = "twsbi"
	VendorWriteUSA         VendorID = "writeusa"
	VendorKenro            VendorID = "kenro"
	VendorAvanti           VendorID = "avanti"
	VendorPlotter          VendorID = "plotter"
	VendorTSL              VendorID = "tsl"
	VendorExaclair         VendorID = "exaclair"
	VendorUniball          VendorID = "uniball"
	VendorAmeico           VendorID = "ameico"
	VendorChartpak         VendorID = "chartpak"
	VendorJPT              VendorID = "jpt"
	VendorWearingeul       VendorID = "wearingeul"
	VendorEliteAccessories VendorID = "elite_accessories"

	// VendorGeneric is reported when no vendor scanner claims a document and
	// the header-driven table parser handles it instead.
	VendorGeneric VendorID = "generic"
)

// LineItem is one normalized invoice row. Instances are appended to the
// output slice in encounter order and never mutated afterwards.
type LineItem struct {
	Quantity           int      `json:"quantity"`
	Backorder          *int     `json:"backorder,omitempty"`
	ItemNumber         string   `json:"item_number"`
	SKU                string   `json:"sku"`
	ProductDescription string   `json:"product_description"`
	UnitPrice          *float64 `json:"unit_price"`
	TotalAmount        *float64 `json:"total_amount"`

	// RetailPrice is the pre-discount list price, set only by vendors whose
	// layout prints one alongside a discount percentage.
	RetailPrice *float64 `json:"retail_price,omitempty"`

	// BackorderQuantity is set only on records derived for the back-ordered
	// portion of a line (Chartpak, JPT).
	BackorderQuantity int `json:"backorder_quantity,omitempty"`
}

// Price returns a pointer to v, for the optional currency fields.
func Price(v float64) *float64 { return &v }

// Count returns a pointer to v, for the optional backorder column.
func Count(v int) *int { return &v }
