package extract

import "scanworker/internal/domain"

// Normalize turns one raw model output into the canonical receipt record:
// field extraction, confidence scoring, and the raw structure embedded
// verbatim for audit. It is pure and touches no collaborators.
func Normalize(raw map[string]any) domain.NormalizedReceipt {
	fields := ExtractFields(raw)
	rec := domain.NormalizedReceipt{
		VendorName: fields.VendorName,
		Date:       fields.Date,
		Confidence: fields.Confidence(),
		Raw:        raw,
	}
	if fields.Total.Valid {
		d := fields.Total.Decimal
		rec.TotalTTC = &d
	}
	if fields.Tax.Valid {
		d := fields.Tax.Decimal
		rec.TVAAmount = &d
	}
	return rec
}
