package extract

import "testing"

func TestExtractFieldsTotalKeyPriority(t *testing.T) {
	raw := map[string]any{
		"total":       "99.99",
		"total_price": "45,90",
	}
	f := ExtractFields(raw)
	if !f.Total.Valid || f.Total.Decimal.StringFixed(2) != "45.90" {
		t.Fatalf("total = %#v, want 45.90 from total_price", f.Total)
	}
}

func TestExtractFieldsTotalFallbackKey(t *testing.T) {
	raw := map[string]any{"subtotal_price": "10,00"}
	f := ExtractFields(raw)
	if !f.Total.Valid || f.Total.Decimal.StringFixed(2) != "10.00" {
		t.Fatalf("total = %#v, want 10.00 from subtotal_price", f.Total)
	}
}

func TestExtractFieldsTotalSequenceLastParseableWins(t *testing.T) {
	raw := map[string]any{
		"total_price": []any{"12,00", "garbage", "45,90", "not-a-number"},
	}
	f := ExtractFields(raw)
	if !f.Total.Valid || f.Total.Decimal.StringFixed(2) != "45.90" {
		t.Fatalf("total = %#v, want 45.90 (last parseable element)", f.Total)
	}
}

func TestExtractFieldsTotalSequenceOfMappings(t *testing.T) {
	raw := map[string]any{
		"total_price": []any{
			map[string]any{"price": "20,00"},
			map[string]any{"total_price": "45,90"},
		},
	}
	f := ExtractFields(raw)
	if !f.Total.Valid || f.Total.Decimal.StringFixed(2) != "45.90" {
		t.Fatalf("total = %#v, want 45.90", f.Total)
	}
}

func TestExtractFieldsTotalUnparseableSequenceContinues(t *testing.T) {
	raw := map[string]any{
		"total_price": []any{"garbage"},
		"total":       "30,00",
	}
	f := ExtractFields(raw)
	if !f.Total.Valid || f.Total.Decimal.StringFixed(2) != "30.00" {
		t.Fatalf("total = %#v, want 30.00 from fallback key", f.Total)
	}
}

func TestExtractFieldsTax(t *testing.T) {
	raw := map[string]any{
		"tva": "7,50",
		"tax": []any{map[string]any{"tax_price": "2,00"}},
	}
	f := ExtractFields(raw)
	if !f.Tax.Valid || f.Tax.Decimal.StringFixed(2) != "2.00" {
		t.Fatalf("tax = %#v, want 2.00 from tax before tva", f.Tax)
	}
}

func TestExtractFieldsVendor(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"plain string", map[string]any{"store_name": "Carrefour"}, "Carrefour"},
		{"fallback key", map[string]any{"company": "Auchan"}, "Auchan"},
		{"sequence of strings", map[string]any{"vendor": []any{"Lidl", "ignored"}}, "Lidl"},
		{"sequence of mappings", map[string]any{"store_name": []any{map[string]any{"nm": "Monoprix"}}}, "Monoprix"},
		{"empty string falls through", map[string]any{"store_name": "", "vendor": "Casino"}, "Casino"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ExtractFields(tc.raw)
			if f.VendorName == nil || *f.VendorName != tc.want {
				t.Fatalf("vendor = %v, want %q", f.VendorName, tc.want)
			}
		})
	}
}

func TestExtractFieldsEmptyRaw(t *testing.T) {
	f := ExtractFields(map[string]any{})
	if f.VendorName != nil || f.Total.Valid || f.Tax.Valid || f.Date != nil {
		t.Fatalf("expected all fields absent, got %#v", f)
	}
}

func TestExtractFieldsDateNeverPopulated(t *testing.T) {
	f := ExtractFields(map[string]any{"date": "2024-01-01"})
	if f.Date != nil {
		t.Fatalf("date = %v, want nil (not extracted in this version)", *f.Date)
	}
}
