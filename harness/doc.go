// Package harness times repeated pathfinder runs over a set of worker counts.
//
// Every trial builds a fresh PathFinder, starts it on the same entrance and
// waits for the completion observer with a deadline. A trial fails when:
//
//   - the observer is not invoked before the deadline (ErrTimeout);
//   - the run aborted on a malformed labyrinth (pathfinder.ErrMalformedGraph);
//   - an expected distance was given and the result differs by more than
//     the tolerance (ErrDistanceMismatch);
//   - more rooms were visited at the same time than workers were
//     configured (ErrConcurrencyExceeded).
//
// Concurrency is measured through the visit hook; WithSlowDown stretches each
// visit so that workers overlap even on small labyrinths.
//
// A timed-out run cannot be cancelled; its workers keep draining in the
// background while the harness moves on to the next trial.
package harness
