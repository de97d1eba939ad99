package extract

import (
	"encoding/json"
	"testing"
)

func TestNormalizeCarrefourReceipt(t *testing.T) {
	raw := map[string]any{
		"store_name":  "Carrefour",
		"total_price": "45,90",
		"tax_price":   "7,50",
	}
	rec := Normalize(raw)

	if rec.VendorName == nil || *rec.VendorName != "Carrefour" {
		t.Fatalf("vendor = %v, want Carrefour", rec.VendorName)
	}
	if rec.TotalTTC == nil || rec.TotalTTC.StringFixed(2) != "45.90" {
		t.Fatalf("total = %v, want 45.90", rec.TotalTTC)
	}
	if rec.TVAAmount == nil || rec.TVAAmount.StringFixed(2) != "7.50" {
		t.Fatalf("tva = %v, want 7.50", rec.TVAAmount)
	}
	if rec.Date != nil {
		t.Fatalf("date = %v, want absent", *rec.Date)
	}
	if rec.Confidence != 0.625 {
		t.Fatalf("confidence = %v, want 0.625", rec.Confidence)
	}
}

func TestNormalizeEmptyRaw(t *testing.T) {
	rec := Normalize(map[string]any{})
	if rec.VendorName != nil || rec.TotalTTC != nil || rec.TVAAmount != nil || rec.Date != nil {
		t.Fatalf("expected all fields absent, got %#v", rec)
	}
	if rec.Confidence != 0.0 {
		t.Fatalf("confidence = %v, want 0.0", rec.Confidence)
	}
}

func TestNormalizeEmbedsRawVerbatim(t *testing.T) {
	raw := map[string]any{
		"store_name": "Carrefour",
		"menu":       []any{map[string]any{"nm": "Milk", "price": "1,20"}},
	}
	rec := Normalize(raw)
	if len(rec.Raw) != len(raw) {
		t.Fatalf("raw not embedded: %#v", rec.Raw)
	}
	if _, ok := rec.Raw["menu"]; !ok {
		t.Fatal("raw lost the menu key")
	}
}

func TestNormalizeJSONShape(t *testing.T) {
	rec := Normalize(map[string]any{"store_name": "Carrefour", "total_price": "45,90"})
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"vendor_name", "total_ttc", "tva_amount", "date", "confidence", "raw"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("result JSON missing %q: %s", key, data)
		}
	}
	if decoded["date"] != nil {
		t.Fatalf("date = %v, want null", decoded["date"])
	}
}
