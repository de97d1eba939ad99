package sqlinline

// Plain filtered read, no claim: concurrent invocations may fetch the same
// queued job. Fixing that needs a conditional transition or claim token in
// the store schema (see DESIGN.md) and is not this worker's call to make.
const QListQueuedScanJobs = `--sql 81547ab9-a4d3-4a90-a671-88d24440a139
select id, receipt_id, image_path, status
from scan_jobs
where status = 'queued'
order by created_at asc
limit $1;
`

const QMarkScanJobProcessing = `--sql 3a57291a-53a5-4db7-8966-9fa5e0a7bf27
update scan_jobs
set status = 'processing', updated_at = now()
where id = $1;
`

const QCompleteScanJob = `--sql 22f11195-ea79-4fb3-928c-715af4a8267e
update scan_jobs
set status = 'completed', result = $2, confidence = $3, updated_at = now()
where id = $1;
`

const QFailScanJob = `--sql 35f14aba-1f61-4c77-898b-5dba644f08ff
update scan_jobs
set status = 'failed', error_message = $2, updated_at = now()
where id = $1;
`
