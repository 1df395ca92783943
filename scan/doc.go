// Package scan runs read-only predicates over every cell of a grid in
// parallel.
//
// Rows are the unit of work: each row is handed to one goroutine of an
// errgroup whose concurrency is capped by WithWorkers. The grid is only
// read, so no locking is needed as long as nobody mutates it during the
// scan (see package grid on concurrency).
//
// Cancellation:
//
//   - Every function takes a context.Context. Rows that have not started
//     when the context is cancelled are skipped and ctx.Err() is returned.
//
// Determinism:
//
//   - Count and CountRays are order-independent sums. Filter returns
//     positions in row-major order regardless of scheduling.
package scan
