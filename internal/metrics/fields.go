package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrOperation = "op"
	AttrVerb      = "verb"
	AttrResult    = "result"
)

// Submission results recorded by RecordSubmission.
const (
	ResultOK           = "ok"
	ResultValidation   = "validation"
	ResultConflict     = "conflict"
	ResultUnauthorized = "unauthorized"
	ResultError        = "error"
)
