package campaign

import "sync"

// aggregator is the concurrency-safe accumulator behind a dispatch run.
// Many call units append; the dispatcher reads the result only after all
// of them are done.
type aggregator struct {
	mu        sync.Mutex
	successes []Success
	failures  []Failure
}

func newAggregator(capacity int) *aggregator {
	return &aggregator{
		successes: make([]Success, 0, capacity),
		failures:  make([]Failure, 0, capacity),
	}
}

func (a *aggregator) success(phoneNumber, callID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.successes = append(a.successes, Success{PhoneNumber: phoneNumber, CallID: callID})
}

func (a *aggregator) failure(phoneNumber, errorDetail string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = append(a.failures, Failure{PhoneNumber: phoneNumber, ErrorDetail: errorDetail})
}

func (a *aggregator) result() BatchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return BatchResult{Successes: a.successes, Failures: a.failures}
}
