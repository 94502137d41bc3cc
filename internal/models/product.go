package models

// DefaultUnit is used when the upstream system has no unit of measure for a
// product.
const DefaultUnit = "pcs"

// ProductRecord is the result of a successful barcode lookup. It is built
// per request from the first matching ERP row and never cached.
type ProductRecord struct {
	Name          string   `json:"name"`
	Measurement   string   `json:"measurement"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
}

// ProductRow is the fixed internal row contract produced by the query layer.
// It isolates the ERP's native field identifiers from the rest of the
// service; only the mapping layer knows the upstream names.
type ProductRow struct {
	Barcode string
	Name    string
	Unit    string
	Price   *float64
}

// NewProductRecord maps a raw result row to a ProductRecord, applying the
// defaults the upstream system may omit. DiscountPrice stays nil: the
// current query contract never supplies it.
func NewProductRecord(row ProductRow) ProductRecord {
	rec := ProductRecord{
		Name:        row.Name,
		Measurement: row.Unit,
	}
	if rec.Measurement == "" {
		rec.Measurement = DefaultUnit
	}
	if row.Price != nil {
		rec.Price = *row.Price
	}
	return rec
}
