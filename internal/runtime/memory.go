// Package runtime holds the process-boundary ambient concerns that sit
// outside the parse/QBCE/print pipeline: memory accounting, signal-based
// cancellation, and process-time measurement. None of it is exercised
// concurrently — the whole tool is single-threaded (spec §5) — so no
// synchronization is needed inside the accountant; signal delivery is the
// one exception and is handled on its own goroutine per Go's os/signal
// model, immediately terminating the process rather than touching shared
// state.
package runtime

import qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"

// Accountant tracks a single running total of bytes charged against a
// soft limit, mirroring the original tool's MemMan (cur_allocated,
// max_allocated, limit). Every scope, variable table, and clause
// allocation in internal/pcnf charges the accountant; exceeding the limit
// is a terminal ResourceExhaustion diagnostic, not a panic or an
// automatic retry.
type Accountant struct {
	current uint64
	peak    uint64
	limit   uint64 // zero means unlimited
}

// NewAccountant creates an Accountant with the given soft limit in bytes.
// A limit of zero means no limit is enforced; charges are still counted.
func NewAccountant(limit uint64) *Accountant {
	return &Accountant{limit: limit}
}

// Charge records an allocation of n bytes. It returns a ResourceExhaustion
// diagnostic if doing so would exceed the configured limit; the caller
// must treat that as terminal and must not retry with a smaller size.
func (a *Accountant) Charge(n uint64) error {
	if a == nil {
		return nil
	}
	if a.limit != 0 && a.current+n > a.limit {
		return qbceerrors.Newf(qbceerrors.ResourceExhaustion,
			"memory limit of %d bytes exceeded (requested %d more, %d already allocated)",
			a.limit, n, a.current)
	}
	a.current += n
	if a.current > a.peak {
		a.peak = a.current
	}
	return nil
}

// Release records that n previously-charged bytes are no longer live.
// qbce-prepro never frees formula memory before shutdown (spec §3
// lifecycles), so this exists for completeness and for tests that build
// and discard formulas in a loop.
func (a *Accountant) Release(n uint64) {
	if a == nil {
		return
	}
	if n > a.current {
		n = a.current
	}
	a.current -= n
}

// Current returns the currently charged byte count.
func (a *Accountant) Current() uint64 {
	if a == nil {
		return 0
	}
	return a.current
}

// Peak returns the highest byte count ever charged.
func (a *Accountant) Peak() uint64 {
	if a == nil {
		return 0
	}
	return a.peak
}
