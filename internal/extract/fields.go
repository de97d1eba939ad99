package extract

import "fmt"

// Candidate keys per canonical field, in schema-trust order: the model emits
// different key names depending on document layout, and the first populated
// key wins. The order is load-bearing, do not reorder.
var (
	totalKeys  = []string{"total_price", "total", "total_etc", "subtotal_price"}
	taxKeys    = []string{"tax_price", "tax", "tva"}
	vendorKeys = []string{"store_name", "vendor", "company", "nm"}
)

// Fields holds the best-effort values extracted from one raw model output.
type Fields struct {
	VendorName *string
	Total      Amount
	Tax        Amount
	Date       *string
}

// ExtractFields walks the schema-ambiguous raw structure and resolves the
// canonical receipt fields. Absent or malformed keys simply leave the field
// unset; shape variance never produces an error.
func ExtractFields(raw map[string]any) Fields {
	f := Fields{
		Total: lookupAmount(raw, totalKeys, "total_price"),
		Tax:   lookupAmount(raw, taxKeys, "tax_price"),
	}
	f.VendorName = lookupVendor(raw, vendorKeys)
	// Date is never extracted in this version; the model rarely yields a
	// usable date key and absence is reflected in the confidence score.
	return f
}

// lookupAmount tries each candidate key in order and returns the first
// parseable amount. Sequence values are scanned element by element and the
// last parseable element wins; mapping elements are read through primaryKey
// with "price" as fallback.
func lookupAmount(raw map[string]any, keys []string, primaryKey string) Amount {
	for _, key := range keys {
		val, ok := raw[key]
		if !ok {
			continue
		}
		var amt Amount
		switch v := val.(type) {
		case []any:
			for _, item := range v {
				if candidate := elementAmount(item, primaryKey); candidate.Valid {
					amt = candidate
				}
			}
		default:
			amt = elementAmount(val, primaryKey)
		}
		if amt.Valid {
			return amt
		}
	}
	return Amount{}
}

func elementAmount(item any, primaryKey string) Amount {
	if m, ok := item.(map[string]any); ok {
		v, ok := m[primaryKey]
		if !ok || v == nil || v == "" {
			v = m["price"]
		}
		return NormalizeAmount(v)
	}
	return NormalizeAmount(item)
}

// lookupVendor resolves the vendor name. A sequence yields its first element
// (the "nm" field of a mapping, otherwise the element stringified); an empty
// result does not count as a match and the search continues.
func lookupVendor(raw map[string]any, keys []string) *string {
	for _, key := range keys {
		val, ok := raw[key]
		if !ok {
			continue
		}
		var name string
		switch v := val.(type) {
		case []any:
			if len(v) == 0 {
				continue
			}
			if m, ok := v[0].(map[string]any); ok {
				if nm, ok := m["nm"].(string); ok {
					name = nm
				}
			} else {
				name = fmt.Sprint(v[0])
			}
		case string:
			name = v
		}
		if name != "" {
			return &name
		}
	}
	return nil
}
