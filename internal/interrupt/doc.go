// Package interrupt implements the cooperative cancellation token polled by
// the pipeline between stages.
//
// The model is poll-based, not preemptive: an in-flight external call always
// runs to completion, and the orchestrator consults the token only at stage
// boundaries. The token transitions false to true at most once per run, so
// an atomic boolean is sufficient and no lock is needed.
package interrupt
