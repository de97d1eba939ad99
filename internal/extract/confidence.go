package extract

// requiredFields is the fixed confidence denominator: vendor, total, date,
// tax. The denominator does not track the weighted checks, so the clamp below
// matters when weights change.
const requiredFields = 4

// Confidence estimates extraction trustworthiness in [0, 1] from which
// canonical fields were populated. TVA carries half weight: tax-exempt
// receipts legitimately have none and a missing tax line should not penalize
// the score as heavily as a missing vendor or total.
func (f Fields) Confidence() float64 {
	score := 0.0
	if f.VendorName != nil && *f.VendorName != "" {
		score++
	}
	if f.Total.Valid {
		score++
	}
	if f.Date != nil && *f.Date != "" {
		score++
	}
	if f.Tax.Valid {
		score += 0.5
	}
	if c := score / requiredFields; c < 1.0 {
		return c
	}
	return 1.0
}
