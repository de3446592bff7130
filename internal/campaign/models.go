package campaign

// CallRequest is one outbound call to initiate.
//
// Immutability invariant: a request is never mutated after the row source
// builds it, so concurrent dispatch units may share it without locking.
type CallRequest struct {
	// PhoneNumber is the destination in E.164 form.
	PhoneNumber string `json:"phone_number"`

	// Variables are the non-phone CSV columns, passed through verbatim to
	// the voice workflow as template variables.
	Variables map[string]string `json:"variables,omitempty"`
}

// Success records a call the remote API accepted.
type Success struct {
	PhoneNumber string `json:"phone_number"`

	// CallID is the remote identifier. May be empty: the API can accept a
	// call without returning an id, and that still counts as initiated.
	CallID string `json:"call_id,omitempty"`
}

// Failure records a call that was not initiated.
type Failure struct {
	PhoneNumber string `json:"phone_number"`

	// ErrorDetail is human-readable: "<status> <body>" for remote
	// rejections, or a transport/timeout description.
	ErrorDetail string `json:"error"`
}

// BatchResult is the aggregate outcome of one dispatch run.
//
// Count invariant: len(Successes)+len(Failures) equals the number of
// requests submitted; every request lands in exactly one list. No ordering
// is promised within either list.
type BatchResult struct {
	Successes []Success `json:"successes"`
	Failures  []Failure `json:"failures"`
}
