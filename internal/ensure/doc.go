// Package ensure drives a batch of tracked tickers through a fixed-size pool
// of workers, each calling an external per-ticker analyzer, under a soft
// wall-clock deadline.
//
// Per-ticker failures are recorded in-band and never abort sibling workers.
// The deadline is cooperative: workers check it before dequeuing the next
// ticker and never preempt an in-flight analyzer call, so a slow call can run
// past the nominal deadline. Tickers still queued when the workers stop are
// simply absent from the report and Partial is set.
package ensure
