package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"outbound-dialer/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Caller initiates a single outbound call and returns the remote call id.
// Implementations must bound the request with their own timeout; the
// dispatcher only cares about the outcome.
type Caller interface {
	CreateCall(ctx context.Context, number string, variables map[string]string) (callID string, err error)
}

// Config holds the per-batch dispatch settings.
type Config struct {
	// MaxConcurrency is the ceiling on call units holding an admission
	// slot at once. Must be >= 1.
	MaxConcurrency int
}

// Dispatcher fans a batch of call requests out against a Caller, bounding
// in-flight requests with a counting admission gate.
//
// A slot is acquired before the remote call and released on every exit
// path, so a fast call frees its slot for the next pending unit instead of
// waiting on batch-mates. Per-call failures are recorded, never propagated;
// a failing unit cannot abort its siblings.
type Dispatcher struct {
	cfg Config
}

func NewDispatcher(cfg Config) *Dispatcher {
	return &Dispatcher{cfg: cfg}
}

// Dispatch runs one unit of work per request and returns once every unit
// has completed. The returned BatchResult always holds exactly one outcome
// per request.
//
// Cancelling ctx stops admitting new units; units that never reached the
// gate are recorded as failures so the count invariant still holds, and the
// context error is returned alongside the (complete) result.
func (d *Dispatcher) Dispatch(ctx context.Context, requests []CallRequest, caller Caller) (BatchResult, error) {
	if d.cfg.MaxConcurrency < 1 {
		return BatchResult{}, fmt.Errorf("max concurrency must be >= 1, got %d", d.cfg.MaxConcurrency)
	}

	log := logger.From(ctx).With("batch_id", uuid.NewString())
	log.Info("dispatching batch", "calls", len(requests), "max_concurrency", d.cfg.MaxConcurrency)

	sem := semaphore.NewWeighted(int64(d.cfg.MaxConcurrency))
	agg := newAggregator(len(requests))

	var wg sync.WaitGroup
	for _, req := range requests {
		wg.Add(1)
		go func(req CallRequest) {
			defer wg.Done()
			d.runUnit(ctx, log, sem, caller, req, agg)
		}(req)
	}
	wg.Wait()

	result := agg.result()
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("batch interrupted: %w", err)
	}
	return result, nil
}

// runUnit executes one call request end to end. Every exit path records
// exactly one outcome and releases the admission slot if one was held.
func (d *Dispatcher) runUnit(ctx context.Context, log *slog.Logger, sem *semaphore.Weighted, caller Caller, req CallRequest, agg *aggregator) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("call unit panicked", "phone_number", req.PhoneNumber, "panic", r)
			agg.failure(req.PhoneNumber, fmt.Sprintf("internal error: %v", r))
		}
	}()

	if err := sem.Acquire(ctx, 1); err != nil {
		agg.failure(req.PhoneNumber, "not dispatched: "+err.Error())
		return
	}
	defer sem.Release(1)

	callID, err := caller.CreateCall(ctx, req.PhoneNumber, req.Variables)
	if err != nil {
		log.Error("call failed", "phone_number", req.PhoneNumber, "err", err)
		agg.failure(req.PhoneNumber, err.Error())
		return
	}

	log.Info("call initiated", "phone_number", req.PhoneNumber, "call_id", callID)
	agg.success(req.PhoneNumber, callID)
}
