package sqlinline

const QSetReceiptScanStatus = `--sql b6406fad-39cb-445b-bce7-fe03ddc6da4e
update receipts
set scan_status = $2, updated_at = now()
where id = $1;
`

// Minor-unit amounts are only written when extraction parsed them; null
// arguments keep whatever the row already holds.
const QSaveReceiptScanResult = `--sql a8f5d8a2-41e9-42b1-8697-3eef296b831e
update receipts
set scan_status = 'completed',
    ocr_raw_result = $2,
    amount_ttc_cents = coalesce($3, amount_ttc_cents),
    amount_tva_cents = coalesce($4, amount_tva_cents),
    updated_at = now()
where id = $1;
`
